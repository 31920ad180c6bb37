package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Eyouel-T/network-analysis/internal/store"
	"github.com/mattn/go-runewidth"
)

const (
	colorReset  = "\033[0m"
	colorSender = "\033[1;34m" // bold blue
	colorThread = "\033[1;32m" // bold green
	colorDim    = "\033[2m"
)

type Options struct {
	Limit int // max messages to show (0 = all)
	Width int // wrap width (0 = no wrap)
}

// indentLines prepends each line of text with the given prefix.
func indentLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// wrapLine breaks a single line into multiple lines that fit within maxWidth
// visible columns, correctly skipping ANSI escape sequences when measuring width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		// check for ANSI escape sequence: ESC[ ... m
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++ // include 'm'
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}

// RenderChannel renders one stored channel's messages as a readable
// transcript: sender and sent time per message, wrapped to Width.
func RenderChannel(db *store.DB, channel string, opts Options) (string, error) {
	msgs, err := db.ChannelMessages(channel, opts.Limit)
	if err != nil {
		return "", fmt.Errorf("channel messages: %w", err)
	}
	if len(msgs) == 0 {
		return "(no messages)", nil
	}

	var b strings.Builder
	separator := colorDim + "--------------------------------------------------" + colorReset
	wrapW := opts.Width

	writeLine := func(s string) {
		for _, wl := range wrapLine(s, wrapW) {
			b.WriteString(wl)
			b.WriteString("\n")
		}
	}

	writeLine(fmt.Sprintf("%s--- #%s (%d messages) ---%s", colorDim, channel, len(msgs), colorReset))

	for i, m := range msgs {
		if i > 0 {
			writeLine(separator)
		}

		header := fmt.Sprintf("%s%s%s %s%s%s", colorSender, m.SenderName, colorReset, colorDim, m.MsgSentTime, colorReset)
		if m.ReplyCount > 0 {
			header += fmt.Sprintf(" %s(%d replies)%s", colorThread, m.ReplyCount, colorReset)
		}
		writeLine(header)

		for _, tl := range strings.Split(indentLines(m.MsgContent, "  "), "\n") {
			writeLine(tl)
		}
		writeLine("")
	}

	return b.String(), nil
}
