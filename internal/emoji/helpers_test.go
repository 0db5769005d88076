package emoji

import (
	"fmt"
	"strings"

	"github.com/stretchr/testify/require"
)

// tb is satisfied by both *testing.T and *rapid.T.
type tb interface {
	require.TestingT
	Helper()
}

type fixtureCategory struct {
	name  CategoryName
	count int
}

// fixtureYAML emits a dataset with count emoji per category. Ids are
// sequential code points; every third emoji has skin tones.
func fixtureYAML(cats ...fixtureCategory) string {
	var b strings.Builder
	b.WriteString("categories:\n")
	cp := 0x1f300
	for _, c := range cats {
		fmt.Fprintf(&b, "  - name: %s\n    emojis:\n", c.name)
		for i := 0; i < c.count; i++ {
			fmt.Fprintf(&b, "      - id: \"%x\"\n", cp)
			fmt.Fprintf(&b, "        name: \"%s item %d\"\n", c.name, i)
			fmt.Fprintf(&b, "        short_names: [\"%s_%d\"]\n", c.name, i)
			if i%3 == 0 {
				b.WriteString("        skin_tones: true\n")
			}
			cp++
		}
	}
	return b.String()
}

func fixtureSource(t tb, cats ...fixtureCategory) Source {
	t.Helper()
	src, err := LoadSource([]byte(fixtureYAML(cats...)))
	require.NoError(t, err, "fixture should parse")
	return src
}

// peopleNature is the five-and-three layout used by the row and cursor scenarios.
func peopleNature(t tb) Source {
	return fixtureSource(t,
		fixtureCategory{name: "people", count: 5},
		fixtureCategory{name: "nature", count: 3},
	)
}

const smileYAML = `
categories:
  - name: smileys-emotion
    emojis:
      - id: "1f604"
        name: "grinning face with smiling eyes"
        short_names: ["smile"]
      - id: "1f610"
        name: "neutral face"
        short_names: ["neutral_face"]
  - name: animals-nature
    emojis:
      - id: "1f436"
        name: "dog face"
        short_names: ["dog"]
  - name: people-body
    emojis:
      - id: "1f44d"
        name: "thumbs up"
        short_names: ["+1", "thumbsup"]
        skin_tones: true
      - id: "1f63a"
        name: "grinning cat"
        short_names: ["smiley_cat"]
        keywords: ["Smile"]
`

func mustLoad(t tb, data string) Source {
	t.Helper()
	src, err := LoadSource([]byte(data))
	require.NoError(t, err)
	return src
}

func rowIDs(r Row) []string {
	ids := make([]string, len(r.Items))
	for i, it := range r.Items {
		ids[i] = it.EmojiID
	}
	return ids
}
