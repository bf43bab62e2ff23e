package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/orgviz/cli/internal/orgmodel"
)

// Options selects the rendering variant.
type Options struct {
	// Marketing wraps the document with installation instructions and
	// attribution framing.
	Marketing bool
	// Version is stamped into the payload's generator metadata.
	Version string
	// Now overrides the timestamp source in tests.
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// HTML renders the org model into a self-contained document.
func HTML(org *orgmodel.Org, opts Options) ([]byte, error) {
	view := buildView(org, opts)
	payload, err := buildPayload(org, opts)
	if err != nil {
		return nil, err
	}
	view.Payload = template.JS(payload)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render: execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the org and writes the document to path.
func WriteFile(path string, org *orgmodel.Org, opts Options) error {
	data, err := HTML(org, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	return nil
}
