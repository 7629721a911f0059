package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() FormData {
	return FormData{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane.doe@example.com",
		Phone:       "555-0134",
		DateOfBirth: "1990-04-12",
		Insurance:   "BlueShield 4411",
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*FormData)
		failed []string
	}{
		{
			name:   "complete form passes",
			mutate: func(f *FormData) {},
			failed: nil,
		},
		{
			name:   "reason is optional",
			mutate: func(f *FormData) { f.Reason = "" },
			failed: nil,
		},
		{
			name:   "missing first name",
			mutate: func(f *FormData) { f.FirstName = "  " },
			failed: []string{"first_name"},
		},
		{
			name:   "missing last name",
			mutate: func(f *FormData) { f.LastName = "" },
			failed: []string{"last_name"},
		},
		{
			name:   "malformed email",
			mutate: func(f *FormData) { f.Email = "abc" },
			failed: []string{"email"},
		},
		{
			name:   "email without domain dot",
			mutate: func(f *FormData) { f.Email = "jane@host" },
			failed: []string{"email"},
		},
		{
			name:   "missing phone",
			mutate: func(f *FormData) { f.Phone = "" },
			failed: []string{"phone"},
		},
		{
			name: "everything missing",
			mutate: func(f *FormData) {
				*f = FormData{}
			},
			failed: []string{"first_name", "last_name", "email", "phone"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)

			assert.Equal(t, tc.failed, Validate(form))
		})
	}
}
