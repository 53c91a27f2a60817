package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"pipecheck/internal/config"
	"pipecheck/internal/platform"
)

// Output formats accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnsupportedFormat indicates an --output value that is neither text nor
// json. The format is checked before anything is written, so no report body
// is produced in that case.
var ErrUnsupportedFormat = errors.New("unknown output format")

// Payload is the shape of the JSON report. Field order here fixes the key
// order of the rendered document; Platform is omitted unless requested.
type Payload struct {
	Name     string         `json:"name"`
	Version  string         `json:"version"`
	Features []string       `json:"features"`
	Status   string         `json:"status"`
	Platform *platform.Info `json:"platform,omitempty"`
}

// Render writes the status report for cfg to w in the requested format.
// plat is included when non-nil (the --platform flag).
func Render(w io.Writer, format string, cfg config.Config, plat *platform.Info) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, cfg, plat)
	case FormatText:
		return renderText(w, cfg, plat)
	default:
		return fmt.Errorf("%w '%s'", ErrUnsupportedFormat, format)
	}
}

func renderJSON(w io.Writer, cfg config.Config, plat *platform.Info) error {
	payload := Payload{
		Name:     cfg.Name,
		Version:  cfg.Version,
		Features: cfg.Features,
		Status:   "success",
		Platform: plat,
	}

	// Pretty-print with two-space indentation for readability.
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func renderText(w io.Writer, cfg config.Config, plat *platform.Info) error {
	fmt.Fprintf(w, "🚀 %s v%s\n", cfg.Name, cfg.Version)
	fmt.Fprintf(w, "Features: %s\n", strings.Join(cfg.Features, ", "))
	if plat != nil {
		fmt.Fprintf(w, "Platform: %s %s (%s)\n", plat.OS, plat.Arch, plat.Family)
	}
	_, err := fmt.Fprintln(w, "Status: ✅ Success")
	return err
}
