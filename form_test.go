package truenetwork

import (
	"testing"
	"time"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.domain.org", true},
		{"", false},
		{"userexample.com", false},
		{"user@example", false},
		{"us er@example.com", false},
		{"user@@example.com", false},
		{"@example.com", false},
		{"user@.com", false},
		{"user@a..com", true},
		{"user@example.", false},
	}
	for _, tt := range tests {
		if got := ValidateEmail(tt.in); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

type formPage struct {
	*Page
	form, input, button *Element
}

func newFormPage() *formPage {
	fp := &formPage{Page: NewPage(400, 300)}
	fp.form = NewElement("form", "form", "cta-form")
	fp.input = NewElement("input", "email")
	fp.input.SetAttr("type", "email")
	fp.button = NewElement("button", "subscribe")
	fp.button.SetAttr("type", "submit")
	fp.button.Text = "Subscribe"
	fp.button.Background = brandColor
	fp.form.AddChild(fp.input)
	fp.form.AddChild(fp.button)
	fp.Root().AddChild(fp.form)
	return fp
}

func TestFormSuccess(t *testing.T) {
	fp := newFormPage()
	f := NewFormHandler(fp.Page, fp.form, fp.input, fp.button)

	fp.input.Value = "user@example.com"
	fp.Submit(fp.form)
	if !f.Showing() || fp.button.Text != "Success!" || fp.button.Background != successColor {
		t.Fatalf("success not shown: %q %+v", fp.button.Text, fp.button.Background)
	}

	fp.tick(2900 * time.Millisecond)
	if fp.button.Text != "Success!" {
		t.Fatal("restored early")
	}
	fp.tick(100 * time.Millisecond)
	if f.Showing() || fp.button.Text != "Subscribe" || fp.button.Background != brandColor {
		t.Errorf("not restored: %q %+v", fp.button.Text, fp.button.Background)
	}
	if fp.input.Value != "" {
		t.Errorf("form not reset: %q", fp.input.Value)
	}
}

func TestFormInvalidEmail(t *testing.T) {
	fp := newFormPage()
	f := NewFormHandler(fp.Page, fp.form, fp.input, fp.button)
	fp.input.Value = "not-an-email"
	fp.Submit(fp.form)
	if f.Showing() || fp.button.Text != "Subscribe" {
		t.Error("invalid email showed success")
	}
	fp.tick(5 * time.Second)
	if fp.input.Value != "not-an-email" {
		t.Error("invalid submission reset the form")
	}
}

func TestFormResubmitRestartsTimer(t *testing.T) {
	fp := newFormPage()
	f := NewFormHandler(fp.Page, fp.form, fp.input, fp.button)

	fp.input.Value = "a@b.co"
	fp.Submit(fp.form)
	fp.tick(2 * time.Second)
	fp.Submit(fp.form)
	fp.tick(2 * time.Second)
	if !f.Showing() {
		t.Fatal("resubmit did not extend the message")
	}
	fp.tick(time.Second)
	if f.Showing() || fp.button.Text != "Subscribe" {
		t.Errorf("original label lost: %q", fp.button.Text)
	}
}

func TestFormSubmitButtonClick(t *testing.T) {
	fp := newFormPage()
	f := NewFormHandler(fp.Page, fp.form, fp.input, fp.button)
	fp.input.Value = "a@b.co"
	fp.click(fp.button, 0, 0, MouseButtonLeft)
	if !f.Showing() {
		t.Error("clicking the submit button did not submit")
	}
}

func TestFormMissingParts(t *testing.T) {
	fp := newFormPage()
	if NewFormHandler(fp.Page, nil, fp.input, fp.button) != nil {
		t.Error("expected nil without a form")
	}
	f := NewFormHandler(fp.Page, fp.form, nil, fp.button)
	fp.Submit(fp.form)
	if f.Showing() {
		t.Error("submission without an input showed success")
	}
	f.Close()

	g := NewFormHandler(fp.Page, fp.form, fp.input, nil)
	fp.input.Value = "a@b.co"
	fp.Submit(fp.form)
	if g.Showing() {
		t.Error("no button, nothing to show")
	}
}

func TestFormClose(t *testing.T) {
	fp := newFormPage()
	f := NewFormHandler(fp.Page, fp.form, fp.input, fp.button)
	fp.input.Value = "a@b.co"
	fp.Submit(fp.form)
	f.Close()
	fp.tick(5 * time.Second)
	if fp.button.Text != "Success!" {
		t.Error("restore ran after Close")
	}
	fp.Submit(fp.form)
	if fp.timers.Len() != 0 {
		t.Error("closed handler still listens")
	}
}
