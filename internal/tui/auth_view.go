package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fletnix/fletnix/internal/service"
	"github.com/fletnix/fletnix/internal/tui/styles"
)

// authView is the login/register form. Validation failures render
// per-field and never reach the network; a server failure renders as a
// single view-level error.
type authView struct {
	auth *service.AuthService
	keys KeyMap

	mode      FormMode
	email     textinput.Model
	password  textinput.Model
	age       textinput.Model
	focus     int
	fieldErrs map[Field]string
	errMsg    string
	busy      bool
	returnTo  string

	width  int
	height int
}

func newAuthView(auth *service.AuthService, keys KeyMap) authView {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 100
	email.Width = 32
	email.Prompt = "  "

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 100
	password.Width = 32
	password.Prompt = "  "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	age := textinput.New()
	age.Placeholder = "age"
	age.CharLimit = 3
	age.Width = 32
	age.Prompt = "  "

	return authView{
		auth:     auth,
		keys:     keys,
		mode:     ModeLogin,
		email:    email,
		password: password,
		age:      age,
	}
}

// mount prepares the view for display, remembering the route to return
// to after a successful login.
func (v *authView) mount(returnTo string) tea.Cmd {
	v.returnTo = returnTo
	v.errMsg = ""
	v.fieldErrs = nil
	v.busy = false
	v.focus = 0
	v.email.Focus()
	v.password.Blur()
	v.age.Blur()
	return textinput.Blink
}

// toggleMode switches between login and register, resetting the form.
func (v *authView) toggleMode() {
	if v.mode == ModeLogin {
		v.mode = ModeRegister
	} else {
		v.mode = ModeLogin
	}
	v.errMsg = ""
	v.fieldErrs = nil
	v.email.SetValue("")
	v.password.SetValue("")
	v.age.SetValue("")
	v.setFocus(0)
}

func (v *authView) fieldCount() int {
	if v.mode == ModeRegister {
		return 3
	}
	return 2
}

func (v *authView) setFocus(i int) {
	v.focus = i
	inputs := []*textinput.Model{&v.email, &v.password, &v.age}
	for idx, in := range inputs {
		if idx == i {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// values snapshots the form for validation and submission.
func (v *authView) values() map[Field]string {
	return map[Field]string{
		FieldEmail:    v.email.Value(),
		FieldPassword: v.password.Value(),
		FieldAge:      v.age.Value(),
	}
}

// submit validates locally first; only a valid form produces a network
// call.
func (v *authView) submit() tea.Cmd {
	values := v.values()
	if errs := validateForm(v.mode, values); errs != nil {
		v.fieldErrs = errs
		return nil
	}
	v.fieldErrs = nil
	v.errMsg = ""
	v.busy = true

	email := strings.TrimSpace(values[FieldEmail])
	password := values[FieldPassword]
	if v.mode == ModeLogin {
		return LoginCmd(v.auth, email, password)
	}
	age, _ := strconv.Atoi(strings.TrimSpace(values[FieldAge]))
	return RegisterCmd(v.auth, email, password, age)
}

// setError records a failed auth attempt.
func (v *authView) setError(msg string) {
	v.errMsg = msg
	v.busy = false
}

func (v authView) update(msg tea.Msg) (authView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.busy {
			return v, nil
		}
		switch {
		case key.Matches(msg, v.keys.Tab):
			v.toggleMode()
			return v, nil
		case key.Matches(msg, v.keys.Up):
			if v.focus > 0 {
				v.setFocus(v.focus - 1)
			}
			return v, nil
		case key.Matches(msg, v.keys.Down):
			if v.focus < v.fieldCount()-1 {
				v.setFocus(v.focus + 1)
			}
			return v, nil
		case key.Matches(msg, v.keys.Enter):
			if v.focus < v.fieldCount()-1 {
				v.setFocus(v.focus + 1)
				return v, nil
			}
			return v, v.submit()
		}
	}

	// Route other messages to the focused input
	var cmd tea.Cmd
	switch v.focus {
	case 0:
		v.email, cmd = v.email.Update(msg)
	case 1:
		v.password, cmd = v.password.Update(msg)
	case 2:
		v.age, cmd = v.age.Update(msg)
	}
	return v, cmd
}

func (v authView) view() string {
	var b strings.Builder

	title := "Sign in to FletNix"
	action := "tab: create an account"
	if v.mode == ModeRegister {
		title = "Create your FletNix account"
		action = "tab: back to sign in"
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(v.renderField("Email", v.email.View(), FieldEmail))
	b.WriteString(v.renderField("Password", v.password.View(), FieldPassword))
	if v.mode == ModeRegister {
		b.WriteString(v.renderField("Age", v.age.View(), FieldAge))
	}

	b.WriteString("\n")
	if v.busy {
		b.WriteString(styles.DimStyle.Render("Signing in..."))
	} else if v.errMsg != "" {
		b.WriteString(styles.ErrorBannerStyle.Render(v.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.DimStyle.Render("enter: submit  •  " + action + "  •  ctrl+c: quit"))

	form := styles.ViewStyle.Render(b.String())
	if v.width > 0 && v.height > 0 {
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, form)
	}
	return form
}

func (v authView) renderField(label, input string, field Field) string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(label))
	b.WriteString("\n")
	b.WriteString(input)
	b.WriteString("\n")
	if msg, ok := v.fieldErrs[field]; ok {
		b.WriteString(styles.FieldErrorStyle.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
