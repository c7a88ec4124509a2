package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/orgball2608/insta-downloader/internal/domain"
	"github.com/orgball2608/insta-downloader/pkg/errors"
)

const (
	UsernamePrompt = "Enter your Instagram username: "
	PasswordPrompt = "Enter your Instagram password: "
	URLPrompt      = "Enter the Instagram video or story URL: "
	FileNamePrompt = "Enter the download file name (without extension): "
	FolderPrompt   = "Enter the download folder full path:"
)

// Prompter is the console the user talks to.
type Prompter interface {
	// Ask prints question on its own line and returns the next input line.
	Ask(question string) (string, error)
	// Say prints one line.
	Say(line string)
}

// Console is a Prompter over a line-oriented reader and writer. Input is
// echoed by the terminal as typed, passwords included.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

var _ Prompter = (*Console)(nil)

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *Console) Ask(question string) (string, error) {
	c.Say(question)

	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeInvalidInput, fmt.Sprintf("input closed before answering %q", strings.TrimSpace(question)))
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Say(line string) {
	fmt.Fprintln(c.out, line)
}

// ReadRequest asks the five questions of a run in their fixed order.
func ReadRequest(p Prompter) (domain.Request, error) {
	var (
		req domain.Request
		err error
	)

	answers := []struct {
		question string
		dst      *string
	}{
		{UsernamePrompt, &req.Credentials.Username},
		{PasswordPrompt, &req.Credentials.Password},
		{URLPrompt, &req.URL},
		{FileNamePrompt, &req.FileName},
		{FolderPrompt, &req.Folder},
	}

	for _, a := range answers {
		if *a.dst, err = p.Ask(a.question); err != nil {
			return domain.Request{}, err
		}
	}

	return req, nil
}
