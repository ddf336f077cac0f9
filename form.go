package truenetwork

import (
	"regexp"
	"time"
)

// emailPattern accepts anything shaped like local@domain.tld with no
// whitespace and exactly one '@' before the last dot group.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether s looks like an email address.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

const (
	successText     = "Success!"
	successDuration = 3 * time.Second
)

// successColor is #2563eb.
var successColor = RGB255(0x25, 0x63, 0xeb, 1)

// FormHandler validates the email field of a call-to-action form on submit
// and briefly turns the submit button into a success message.
type FormHandler struct {
	page   *Page
	form   *Element
	input  *Element
	button *Element

	pending      bool
	originalText string
	originalBG   Color
	timer        TimerHandle
	handle       CallbackHandle
}

// NewFormHandler listens for submissions of form. input is the email field
// and button the submit button. Returns nil when form is nil.
func NewFormHandler(p *Page, form, input, button *Element) *FormHandler {
	if form == nil {
		return nil
	}
	f := &FormHandler{page: p, form: form, input: input, button: button}
	f.handle = form.OnSubmit(func(*Element) { f.submit() })
	return f
}

func (f *FormHandler) submit() {
	if f.input == nil {
		return
	}
	if ValidateEmail(f.input.Value) {
		f.showSuccess()
	}
}

// showSuccess swaps the button label and color for successDuration, then
// restores them and resets the form. A second success while one is showing
// restarts the countdown and keeps the original label.
func (f *FormHandler) showSuccess() {
	if f.button == nil {
		return
	}
	if f.pending {
		f.page.CancelTimer(f.timer)
	} else {
		f.originalText = f.button.Text
		f.originalBG = f.button.Background
		f.pending = true
	}
	f.button.Text = successText
	f.button.Background = successColor

	f.timer = f.page.AfterFunc(successDuration, func() {
		f.pending = false
		f.timer = 0
		f.button.Text = f.originalText
		f.button.Background = f.originalBG
		f.Reset()
	})
}

// Reset clears every input inside the form.
func (f *FormHandler) Reset() {
	f.form.walk(func(e *Element) {
		if e.Tag == "input" {
			e.Value = ""
		}
	})
}

// Showing reports whether the success message is displayed.
func (f *FormHandler) Showing() bool {
	return f.pending
}

// Close stops listening and cancels a pending restore.
func (f *FormHandler) Close() {
	f.handle.Remove()
	f.page.CancelTimer(f.timer)
}
