package board

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/chesscore/position"
)

// PGN is one game record: its tag pairs, the SAN tokens of the main line and the result marker.
type PGN struct {
	Tags   map[string]string
	Moves  []string
	Result string
}

var pgnResults = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// ParsePGN reads the first game in text. The header is the leading run of [Key "Value"] tags,
// any number per line. Move numbers, comments, NAGs and variations are dropped; the result
// marker ends the movetext.
func ParsePGN(text string) (*PGN, error) {
	pgn := &PGN{Tags: make(map[string]string)}

	// % escape lines are blanked so tag errors keep their line numbers
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "%") {
			line = ""
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPGN, err)
	}
	text = strings.Join(lines, "\n")

	i := 0
	for {
		for i < len(text) && strings.IndexByte(" \t\r\n", text[i]) != -1 {
			i++
		}
		if i == len(text) || text[i] != '[' {
			break
		}
		lineNo := strings.Count(text[:i], "\n") + 1
		end, err := tagEnd(text[i:])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidPGN, lineNo, err)
		}
		key, value, err := parseTag(text[i : i+end+1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidPGN, lineNo, err)
		}
		pgn.Tags[key] = value
		i += end + 1
	}

	tokens, err := tokenizeMovetext(text[i:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPGN, err)
	}
	for _, tok := range tokens {
		if pgnResults[tok] {
			pgn.Result = tok
			break
		}
		pgn.Moves = append(pgn.Moves, tok)
	}
	return pgn, nil
}

// tagEnd returns the index of the ']' closing the tag that s starts with. Brackets inside the
// quoted value do not count and a tag may not span lines.
func tagEnd(s string) (int, error) {
	quoted := false
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\n':
			return 0, fmt.Errorf("%w: unterminated tag %q", position.ErrInvalidParameter, s[:i])
		case quoted && c == '\\':
			i++
		case c == '"':
			quoted = !quoted
		case c == ']' && !quoted:
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unterminated tag %q", position.ErrInvalidParameter, s)
}

func parseTag(tag string) (string, string, error) {
	key, quoted, ok := strings.Cut(strings.TrimSpace(tag[1:len(tag)-1]), " ")
	if !ok || key == "" {
		return "", "", fmt.Errorf("%w: tag %q has no value", position.ErrWrongParameterNumber, tag)
	}
	value, err := strconv.Unquote(strings.TrimSpace(quoted))
	if err != nil {
		return "", "", fmt.Errorf("%w: tag %s value %s", position.ErrInvalidParameter, key, quoted)
	}
	return key, value, nil
}

// tokenizeMovetext splits movetext into SAN and result tokens.
func tokenizeMovetext(movetext string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	flush := func() {
		tok := current.String()
		current.Reset()
		// move numbers may be glued to the move, as in "1.e4" or "12...Nf6"
		if n := len(tok) - len(strings.TrimLeft(tok, "0123456789")); n > 0 && n < len(tok) && tok[n] == '.' {
			tok = strings.TrimLeft(tok[n:], ".")
		}
		if tok == "" || strings.HasPrefix(tok, "$") || strings.Trim(tok, "!?") == "" {
			return
		}
		tokens = append(tokens, tok)
	}

	depth := 0
	for i := 0; i < len(movetext); i++ {
		c := movetext[i]
		switch {
		case c == '{':
			end := strings.IndexByte(movetext[i:], '}')
			if end == -1 {
				return nil, fmt.Errorf("%w: unterminated comment", position.ErrInvalidParameter)
			}
			flush()
			i += end
		case c == ';':
			flush()
			end := strings.IndexByte(movetext[i:], '\n')
			if end == -1 {
				return tokens, nil
			}
			i += end
		case c == '(':
			flush()
			depth++
		case c == ')':
			if depth == 0 {
				return nil, fmt.Errorf("%w: unbalanced variation", position.ErrInvalidParameter)
			}
			depth--
		case depth > 0:
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			flush()
		default:
			_ = current.WriteByte(c)
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced variation", position.ErrInvalidParameter)
	}
	flush()
	return tokens, nil
}

// NewGameFromPGN replays the main line of text, starting from its FEN tag when present.
func NewGameFromPGN(text string) (*Game, error) {
	pgn, err := ParsePGN(text)
	if err != nil {
		return nil, err
	}
	return pgn.Game()
}

// Game replays the record's moves.
func (p *PGN) Game() (*Game, error) {
	var opts []GameOption
	if fen, ok := p.Tags["FEN"]; ok {
		opts = append(opts, WithFEN(fen))
	}
	g, err := NewGame(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPGN, err)
	}
	for i, san := range p.Moves {
		a, err := NewActionFromSAN(san, g)
		if err != nil {
			return nil, fmt.Errorf("%w: ply %d: %w", ErrInvalidPGN, i+1, err)
		}
		g.ExecuteAction(a)
	}
	return g, nil
}
