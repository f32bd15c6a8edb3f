package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveEmail(t *testing.T) {
	tests := []struct {
		name       string
		firstname  string
		lastname   string
		isExternal bool
		want       string
	}{
		{"internal", "John", "Doe", false, "john.doe@wps-allianz.de"},
		{"external", "Jane", "Smith", true, "external_smith.jane@wps-allianz.de"},
		{"internal with spaces", "First Name", "Last Name", false, "firstname.lastname@wps-allianz.de"},
		{"external with spaces", "Another Name", "Family Name", true, "external_familyname.anothername@wps-allianz.de"},
		{"tabs and surrounding whitespace", " Mary\tAnn ", "Van Dyke\n", false, "maryann.vandyke@wps-allianz.de"},
		{"mixed case", "PeTeR", "JONES", false, "peter.jones@wps-allianz.de"},
		{"empty names are not rejected", "", "", false, ".@wps-allianz.de"},
		{"empty names external", "", "", true, "external_.@wps-allianz.de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveEmail(tt.firstname, tt.lastname, tt.isExternal))
		})
	}
}

func TestDeriveEmailIsDeterministic(t *testing.T) {
	first := DeriveEmail("Simple", "User", false)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DeriveEmail("Simple", "User", false))
	}
}
