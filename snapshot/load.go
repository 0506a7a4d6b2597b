package snapshot

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/pelletier/go-toml/v2"
)

// MaxFileSize bounds the snapshot files Load accepts
const MaxFileSize = 4 << 20

//go:embed schema.cue
var schemaSource string

var log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "snapshot"))

// Load reads, validates and links the snapshot stored at path
func Load(path string) (*Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot load failed (%s): %w", path, err)
	}

	root, err := Parse(data, path)
	if err != nil {
		return nil, err
	}

	log.Infoln("Loaded snapshot", path)

	return root, nil
}

// Parse decodes TOML snapshot data. Values are checked against the #Snapshot
// schema, which also fills in defaults for omitted fields. name is used in
// error messages only.
func Parse(data []byte, name string) (*Group, error) {
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%s: %w (%d bytes, limit %d)", name, ErrTooLarge, len(data), MaxFileSize)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("snapshot parse failed (%s): %w", name, err)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile snapshot schema: %w", schemaValue.Err())
	}

	userValue := ctx.Encode(raw)
	if userValue.Err() != nil {
		return nil, formatError(userValue.Err(), name)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Snapshot"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, formatError(err, name)
	}

	var file File
	if err := unified.Decode(&file); err != nil {
		return nil, formatError(err, name)
	}
	if file.Root == nil {
		return nil, fmt.Errorf("%s: missing root group", name)
	}

	file.Root.Link()
	log.Debugln("Parsed snapshot", name)

	return file.Root, nil
}
