// File: /utils/validators_test.go
package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.domain.org"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "missing@tld", "@example.com", "user@.com"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	valid := []string{"Abc123", "secret!1", "PASSword9"}
	for _, password := range valid {
		if !IsValidPassword(password) {
			t.Errorf("expected %q to be valid", password)
		}
	}

	invalid := []string{"short", "alllowercase", "ABCDEFGH", "Ab1"}
	for _, password := range invalid {
		if IsValidPassword(password) {
			t.Errorf("expected %q to be invalid", password)
		}
	}
}

func TestIsValidCPF(t *testing.T) {
	valid := []string{"111.444.777-35", "11144477735", "529.982.247-25"}
	for _, cpf := range valid {
		if !IsValidCPF(cpf) {
			t.Errorf("expected %q to be valid", cpf)
		}
	}

	invalid := []string{
		"",
		"111.444.777-36", // wrong check digit
		"111.111.111-11", // repeated digits
		"123456789",      // too short
		"111444777351",   // too long
		"111.444.77a-35", // letters
	}
	for _, cpf := range invalid {
		if IsValidCPF(cpf) {
			t.Errorf("expected %q to be invalid", cpf)
		}
	}
}
