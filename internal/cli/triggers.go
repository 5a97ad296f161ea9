package cli

import (
	"fmt"
	"strings"

	"github.com/pathvana/pathvana/internal/host"
	"github.com/pathvana/pathvana/internal/pattern"
	"github.com/pathvana/pathvana/internal/source"
)

// Triggers prints the platform trigger characters and keyword pattern so a
// host integration can register them.
func Triggers() error {
	src := source.New(host.NewOS(), pattern.Current, nil)

	fmt.Printf("trigger characters: %s\n", strings.Join(src.TriggerCharacters(), " "))
	fmt.Printf("keyword pattern:    %s\n", src.KeywordPattern())
	return nil
}
