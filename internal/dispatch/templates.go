package dispatch

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/alfredjeanlab/bdayd/internal/catalog"
)

var countdownTmpl = template.Must(template.New("countdown").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #ec4899; text-align: center;">Birthday Countdown! 🎂</h1>
  <p style="font-size: 18px; text-align: center;">Hey {{.Name}}! Just {{.DaysLeft}} days until your special day!</p>
  <div style="background-color: #fce7f3; padding: 20px; border-radius: 10px; margin: 20px 0;">
    <p style="font-style: italic; color: #4b5563;">"{{.Quote.Text}}"</p>
    <p style="text-align: right; color: #6b7280;">- {{.Quote.Author}}</p>
  </div>
  <p style="text-align: center;">Can't wait to celebrate with you! 🎉</p>
</div>
`))

var birthdayTmpl = template.Must(template.New("birthday").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #fff0f6; border-radius: 15px;">
  <h1 style="color: #db2777; text-align: center; font-size: 28px;">🎉 Happy Birthday, {{.Name}}! 🎂</h1>
  <p style="font-size: 18px; text-align: center; color: #4b5563;">
    On this fabulous day, a reminder that you're like a fine wine, getting better with age. 🍷
  </p>
  <p style="text-align: center; font-size: 16px; color: #4b5563;">
    Here's to celebrating the one person who can pull off being gorgeous, hilarious, and completely irresistible all at once.
  </p>
  <p style="text-align: center; color: #be185d; font-size: 18px;">With all the charm I could muster ❤️</p>
</div>
`))

var notificationTmpl = template.Must(template.New("notification").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #ec4899; text-align: center;">Server Notification</h1>
  <p style="font-size: 18px;">{{.Message}}</p>
</div>
`))

func countdownBody(name string, daysLeft int, quote catalog.Quote) (string, error) {
	var b strings.Builder
	err := countdownTmpl.Execute(&b, struct {
		Name     string
		DaysLeft int
		Quote    catalog.Quote
	}{name, daysLeft, quote})
	if err != nil {
		return "", fmt.Errorf("rendering countdown body: %w", err)
	}
	return b.String(), nil
}

func birthdayBody(name string) (string, error) {
	var b strings.Builder
	if err := birthdayTmpl.Execute(&b, struct{ Name string }{name}); err != nil {
		return "", fmt.Errorf("rendering birthday body: %w", err)
	}
	return b.String(), nil
}

func notificationBody(message string) (string, error) {
	var b strings.Builder
	if err := notificationTmpl.Execute(&b, struct{ Message string }{message}); err != nil {
		return "", fmt.Errorf("rendering notification body: %w", err)
	}
	return b.String(), nil
}
