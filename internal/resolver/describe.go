package resolver

import (
	"fmt"
	"strconv"
	"strings"
)

// DescribeResult is the decoded form of a describe query, whose wire
// encoding is the single hyphen-delimited string "TAG[-N-SHA][-dirty]".
// It is parsed once here and formatted once by Candidate; no other code
// re-splits the string.
type DescribeResult struct {
	Tag          string
	CommitsSince int
	ShaPrefix    string
	Dirty        bool
}

// ParseDescribe decodes raw describe output. git prefixes the abbreviated
// hash with "g" ("v0.5-2-g034f"); the prefix is stripped so ShaPrefix holds
// the bare hex characters. Tags may themselves contain hyphens, so the
// distance/hash suffix is detected from the right.
func ParseDescribe(s string) (DescribeResult, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DescribeResult{}, fmt.Errorf("empty describe output")
	}

	tokens := strings.Split(s, "-")

	var d DescribeResult
	if tokens[len(tokens)-1] == "dirty" {
		d.Dirty = true
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) >= 3 {
		nTok := tokens[len(tokens)-2]
		shaTok := strings.TrimPrefix(tokens[len(tokens)-1], "g")
		if n, err := strconv.Atoi(nTok); err == nil && isHex(shaTok) {
			d.CommitsSince = n
			d.ShaPrefix = shaTok
			tokens = tokens[:len(tokens)-2]
		}
	}

	d.Tag = strings.Join(tokens, "-")
	if d.Tag == "" {
		return DescribeResult{}, fmt.Errorf("describe output %q has no tag", s)
	}
	return d, nil
}

// Candidate formats the version candidate derived from the describe result:
// the tag without its leading "v", suffixed with "-N-SHA" when the head is
// past the tag. An empty return means the tag was nothing but the prefix.
func (d DescribeResult) Candidate() string {
	base := strings.TrimPrefix(d.Tag, "v")
	if base == "" {
		return ""
	}
	if d.CommitsSince > 0 {
		return fmt.Sprintf("%s-%d-%s", base, d.CommitsSince, d.ShaPrefix)
	}
	return base
}

// String re-encodes the result in the wire form.
func (d DescribeResult) String() string {
	var sb strings.Builder
	sb.WriteString(d.Tag)
	if d.CommitsSince > 0 {
		fmt.Fprintf(&sb, "-%d-g%s", d.CommitsSince, d.ShaPrefix)
	}
	if d.Dirty {
		sb.WriteString("-dirty")
	}
	return sb.String()
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
