package table

import "regexp"

// mentionRe matches raw @U... user mentions in message text.
var mentionRe = regexp.MustCompile(`@U\w+`)

// TaggedUsers extracts the user mentions from each row's message
// content, parallel to the input rows. Rows without mentions get a nil
// entry.
func TaggedUsers(rows []MessageRow) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = mentionRe.FindAllString(row.MsgContent, -1)
	}
	return out
}
