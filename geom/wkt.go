package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
)

var wktTypes = map[string]bool{
	"POINT":              true,
	"LINESTRING":         true,
	"POLYGON":            true,
	"MULTIPOINT":         true,
	"MULTILINESTRING":    true,
	"MULTIPOLYGON":       true,
	"GEOMETRYCOLLECTION": true,
}

// ParseWKT parses well-known text into a typed geometry.
// Supported: POINT, LINESTRING, POLYGON, MULTIPOINT, MULTILINESTRING,
// MULTIPOLYGON and GEOMETRYCOLLECTION, each optionally EMPTY. Z/M
// ordinates are read and dropped.
func ParseWKT(text string) (Geometry, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	flat, err := flattenWKT(s)
	if err != nil {
		return nil, err
	}
	if typ, ok := strings.CutSuffix(flat, " EMPTY"); ok && wktTypes[typ] {
		return emptyWKT(typ), nil
	}
	g, err := wkt.Unmarshal(flat)
	if err != nil {
		return nil, fmt.Errorf("wkt: %w", err)
	}
	shape := fromOrb(g)
	if shape == nil {
		return nil, fmt.Errorf("wkt: unsupported geometry %T", g)
	}
	return shape, nil
}

// emptyWKT is the geom value of "<typ> EMPTY". An empty point has no
// coordinate, so it becomes an empty MultiPoint.
func emptyWKT(typ string) Geometry {
	switch typ {
	case "POINT", "MULTIPOINT":
		return MultiPoint{}
	case "LINESTRING":
		return LineString{}
	case "POLYGON":
		return Polygon{}
	case "MULTILINESTRING":
		return MultiLineString{}
	case "MULTIPOLYGON":
		return MultiPolygon{}
	}
	return Collection{}
}

// flattenWKT checks s and rewrites it in the compact 2D form that orb
// decodes: upper-case type names, no Z, M or ZM markers, only x and y
// of each position, and every MULTIPOINT member in parentheses.
func flattenWKT(s string) (string, error) {
	var (
		b    strings.Builder
		open []string // type that opened each parenthesis, "" for inner lists
		typ  string   // type name still waiting for "(" or EMPTY
		n    int      // ordinates read in the current position
		bare bool     // inside an unparenthesized MULTIPOINT member
		done bool
	)
	endPosition := func(at int) error {
		if n == 1 {
			return fmt.Errorf("wkt: coordinate needs x and y at offset %d", at)
		}
		if bare {
			b.WriteByte(')')
			bare = false
		}
		n = 0
		return nil
	}
	for i := 0; i < len(s); {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			i++
			continue
		}
		if done {
			return "", errors.New("wkt: trailing data after geometry")
		}
		switch {
		case isWKTLetter(c):
			j := i
			for j < len(s) && isWKTLetter(s[j]) {
				j++
			}
			word := strings.ToUpper(s[i:j])
			switch {
			case word == "Z" || word == "M" || word == "ZM":
				if typ == "" {
					return "", fmt.Errorf("wkt: unexpected %s at offset %d", word, i)
				}
			case word == "EMPTY":
				if typ == "" {
					return "", fmt.Errorf("wkt: unexpected EMPTY at offset %d", i)
				}
				b.WriteString(" EMPTY")
				typ = ""
				done = len(open) == 0
			case wktTypes[word]:
				if typ != "" || (len(open) > 0 && open[len(open)-1] != "GEOMETRYCOLLECTION") {
					return "", fmt.Errorf("wkt: unexpected %s at offset %d", word, i)
				}
				b.WriteString(word)
				typ = word
			default:
				return "", errors.New("unsupported wkt type: " + word)
			}
			i = j
		case c == '(':
			if typ == "" && len(open) == 0 {
				return "", errors.New("wkt: missing geometry type")
			}
			if len(open) > 0 && open[len(open)-1] == "GEOMETRYCOLLECTION" && typ == "" {
				return "", fmt.Errorf("wkt: expected geometry type at offset %d", i)
			}
			open = append(open, typ)
			typ = ""
			b.WriteByte('(')
			i++
		case c == ',' || c == ')':
			if typ != "" {
				return "", fmt.Errorf("wkt: expected '(' or EMPTY after %s", typ)
			}
			if len(open) == 0 {
				return "", fmt.Errorf("wkt: unexpected %q at offset %d", c, i)
			}
			if err := endPosition(i); err != nil {
				return "", err
			}
			if c == ')' {
				open = open[:len(open)-1]
				done = len(open) == 0
			}
			b.WriteByte(c)
			i++
		case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
			j := i
			for j < len(s) && strings.IndexByte("+-.0123456789eE", s[j]) >= 0 {
				j++
			}
			tok := s[i:j]
			if _, err := strconv.ParseFloat(tok, 64); err != nil {
				return "", fmt.Errorf("wkt: bad number %q at offset %d", tok, i)
			}
			if len(open) == 0 || typ != "" {
				return "", fmt.Errorf("wkt: expected '(' at offset %d", i)
			}
			if n == 0 && open[len(open)-1] == "MULTIPOINT" {
				b.WriteByte('(')
				bare = true
			}
			n++
			switch n {
			case 1:
				b.WriteString(tok)
			case 2:
				b.WriteString(" " + tok)
			}
			i = j
		default:
			return "", fmt.Errorf("wkt: unexpected %q at offset %d", c, i)
		}
	}
	if typ != "" {
		return "", fmt.Errorf("wkt: expected '(' or EMPTY after %s", typ)
	}
	if len(open) > 0 {
		return "", errors.New("wkt: missing ')'")
	}
	return b.String(), nil
}

func isWKTLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
