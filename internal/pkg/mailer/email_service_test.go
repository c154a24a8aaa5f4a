package mailer

import (
	"bytes"
	"errors"
	"testing"

	"afrimigrate-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingSender struct {
	sent []*gomail.Message
	err  error
}

func (r *recordingSender) DialAndSend(m ...*gomail.Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, m...)
	return nil
}

func TestSendNotice(t *testing.T) {
	rec := &recordingSender{}
	svc := newEmailService(rec, "noreply@afrimigrate.test", "Afrimigrate", logger.NewNop())

	err := svc.SendNotice("desk@afrimigrate.test", Notice{
		Subject: "New request: Document: Visa Letter",
		Heading: "A new add-on request was submitted",
		Fields:  [][2]string{{"Price", "$49.00"}, {"Note", "<b>urgent</b>"}},
	})
	require.NoError(t, err)
	require.Len(t, rec.sent, 1)

	m := rec.sent[0]
	assert.Equal(t, []string{"desk@afrimigrate.test"}, m.GetHeader("To"))
	assert.Equal(t, []string{"New request: Document: Visa Letter"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Price: $49.00")
}

func TestRenderHTMLEscapes(t *testing.T) {
	out := renderHTML(Notice{Heading: "A & B", Fields: [][2]string{{"Note", "<b>urgent</b>"}}})
	assert.Contains(t, out, "<h2>A &amp; B</h2>")
	assert.Contains(t, out, "&lt;b&gt;urgent&lt;/b&gt;")
	assert.NotContains(t, out, "<b>urgent</b>")
}

func TestSendNoticeReportsDialError(t *testing.T) {
	rec := &recordingSender{err: errors.New("connection refused")}
	svc := newEmailService(rec, "noreply@afrimigrate.test", "Afrimigrate", logger.NewNop())

	err := svc.SendNotice("desk@afrimigrate.test", Notice{Subject: "x"})
	assert.EqualError(t, err, "connection refused")
}
