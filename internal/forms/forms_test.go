package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestBuyFormValidate(t *testing.T) {
	tests := []struct {
		name string
		form BuyForm
		want []string
	}{
		{"valid minimal", BuyForm{Name: "Jane", Phone: "12345", Email: "jane@x.com"}, nil},
		{"all missing", BuyForm{}, []string{"name", "phone", "email"}},
		{"bad email", BuyForm{Name: "Jane", Phone: "12345", Email: "not-an-email"}, []string{"email"}},
		{"email without dot in domain", BuyForm{Name: "Jane", Phone: "12345", Email: "jane@localhost"}, []string{"email"}},
		{"whitespace only name", BuyForm{Name: "   ", Phone: "12345", Email: "jane@x.com"}, []string{"name"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			assert.ElementsMatch(t, tt.want, fields(errs))
		})
	}
}

func TestBuyFormTrimsOptionalFields(t *testing.T) {
	f := BuyForm{Name: " Jane ", Phone: " 123 ", Email: " jane@x.com ", Brand: "  "}
	require.Empty(t, f.Validate())
	assert.Equal(t, "Jane", f.Name)
	assert.Equal(t, "jane@x.com", f.Email)
	assert.Equal(t, "", f.Brand)
}

func TestSellFormPhoneDigits(t *testing.T) {
	base := SellForm{Name: "A", Email: "a@x.com", Brand: "Picanol", Model: "OmniPlus"}

	f := base
	f.Phone = "+91 98765 43210" // 12 digits
	assert.Empty(t, f.Validate())

	f = base
	f.Phone = "12345"
	errs := f.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)

	f = base
	f.Phone = "1234567890123456" // 16 digits
	errs = f.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)
}

func TestSellFormRequired(t *testing.T) {
	f := SellForm{}
	assert.ElementsMatch(t, []string{"name", "email", "phone", "brand", "model"}, fields(f.Validate()))
}

func TestContactFormMessageLength(t *testing.T) {
	f := ContactForm{Name: "Jane Doe", Email: "jane@x.com", Message: "123456789"}
	errs := f.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "message", errs[0].Field)

	f.Message = "1234567890"
	assert.Empty(t, f.Validate())
}

func TestContactFormMessageLengthCountsCharacters(t *testing.T) {
	// 9 characters but 18 bytes; must still be too short.
	f := ContactForm{Name: "Jane", Email: "jane@x.com", Message: "ñññññññññ"}
	errs := f.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "message", errs[0].Field)

	f.Message = "ññññññññññ"
	assert.Empty(t, f.Validate())
}

func TestContactFormMissingFieldsNamed(t *testing.T) {
	f := ContactForm{Message: "long enough message"}
	errs := f.Validate()
	assert.ElementsMatch(t, []string{"name", "email"}, fields(errs))
	for _, e := range errs {
		assert.Contains(t, e.Message, "required")
	}
}

func TestApplicationFormValidate(t *testing.T) {
	f := ApplicationForm{Name: "Jo", Email: "jo@x.com", Phone: "5551234", JobID: "sales-engineer", JobTitle: "Sales Engineer"}
	assert.Empty(t, f.Validate())

	f = ApplicationForm{Email: "jo@x.com"}
	assert.ElementsMatch(t, []string{"name", "phone", "jobId", "jobTitle"}, fields(f.Validate()))
}

func TestSubscribeFormNormalization(t *testing.T) {
	f := SubscribeForm{Email: " A@X.Com "}
	require.Empty(t, f.Validate())
	assert.Equal(t, "a@x.com", f.Normalized())
}

func TestSubscribeFormInvalid(t *testing.T) {
	for _, email := range []string{"", "a@b", "@x.com", "two@@x.com", "plain"} {
		f := SubscribeForm{Email: email}
		assert.NotEmpty(t, f.Validate(), "email %q should be rejected", email)
	}
}
