// File: /services/message_service.go
package services

import (
	"autosales-api/models"
	"autosales-api/repositories"

	"go.uber.org/zap"
)

// MessageNotifier delivers the notification for an assigned message.
// EmailService implements it.
type MessageNotifier interface {
	SendMessageNotification(toEmail, toName string, msg *models.Message) error
}

// MessageService handles the customer-contact workflow: intake,
// assignment to an employee and status tracking.
type MessageService struct {
	messages  *repositories.MessageRepository
	employees *repositories.EmployeeRepository
	notifier  MessageNotifier
	logger    *zap.Logger
}

func NewMessageService(messages *repositories.MessageRepository, employees *repositories.EmployeeRepository, notifier MessageNotifier, logger *zap.Logger) *MessageService {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &MessageService{
		messages:  messages,
		employees: employees,
		notifier:  notifier,
		logger:    logger,
	}
}

// Submit records an inbound customer message.
func (s *MessageService) Submit(msg *models.Message) error {
	msg.Status = models.MessageStatusPending
	if err := s.messages.Create(msg); err != nil {
		s.logger.Error("failed to store message", zap.String("email", msg.Email), zap.Error(err))
		return err
	}
	s.logger.Info("message received", zap.Uint("message_id", msg.ID), zap.String("email", msg.Email))
	return nil
}

// Assign hands the message to an employee and notifies them by email.
// A failed notification is logged but does not undo the assignment.
func (s *MessageService) Assign(messageID, employeeID uint) (*models.Message, error) {
	employee, err := s.employees.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if err := s.messages.Assign(messageID, employeeID); err != nil {
		return nil, err
	}

	msg, err := s.messages.GetByID(messageID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.SendMessageNotification(employee.Email, employee.Name, msg); err != nil {
			s.logger.Warn("failed to notify employee",
				zap.Uint("message_id", messageID),
				zap.Uint("employee_id", employeeID),
				zap.Error(err))
		}
	}

	s.logger.Info("message assigned",
		zap.Uint("message_id", messageID),
		zap.Uint("employee_id", employeeID))
	return msg, nil
}
