package capability

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// ErrUnsupportedDevice is returned for models missing from the catalog or
// listed without a capability bitset.
var ErrUnsupportedDevice = errors.New("unsupported device")

//go:embed catalog.json
var builtinCatalogJSON []byte

var builtinCatalog = mustEncodeBuiltin()

// Catalog lists capability flags and the per-model bitsets.
type Catalog struct {
	Flags  []FlagSpec           `json:"flags"`
	Models map[string]ModelSpec `json:"models"`
}

// FlagSpec places a flag in the model bitset.
type FlagSpec struct {
	Name        string `json:"name"`
	Bit         uint   `json:"bit"`
	MinFirmware string `json:"min_firmware,omitempty"`
}

// ModelSpec describes one device model.
type ModelSpec struct {
	Name          string `json:"name,omitempty"`
	Bitset        string `json:"bitset"`
	SelfCleanArea *Range `json:"self_clean_area,omitempty"`
	SelfCleanTime *Range `json:"self_clean_time,omitempty"`
	WetnessLevel  *Range `json:"wetness_level,omitempty"`
}

// Range is an inclusive integer range.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool { return r.Min == 0 && r.Max == 0 }

// DecodeCatalog decodes a base64(zlib(JSON)) catalog blob.
func DecodeCatalog(blob []byte) (*Catalog, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(blob)))
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decompress catalog: %w", err)
	}
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &c, nil
}

// EncodeCatalog produces the blob DecodeCatalog reads.
func EncodeCatalog(c *Catalog) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(buf.Len()))
	base64.StdEncoding.Encode(out, buf.Bytes())
	return out, nil
}

// BuiltinCatalog returns the catalog blob shipped with the module.
func BuiltinCatalog() []byte { return builtinCatalog }

func mustEncodeBuiltin() []byte {
	var c Catalog
	if err := json.Unmarshal(builtinCatalogJSON, &c); err != nil {
		panic(fmt.Sprintf("capability: builtin catalog: %v", err))
	}
	blob, err := EncodeCatalog(&c)
	if err != nil {
		panic(fmt.Sprintf("capability: builtin catalog: %v", err))
	}
	return blob
}

// Load decodes a catalog blob and resolves the profile for one device.
func Load(blob []byte, model, firmware string) (*Profile, error) {
	c, err := DecodeCatalog(blob)
	if err != nil {
		return nil, err
	}
	return c.Profile(model, firmware)
}

// Profile resolves the capability profile of a model at a firmware version.
func (c *Catalog) Profile(model, firmware string) (*Profile, error) {
	spec, ok := c.Models[model]
	if !ok {
		return nil, fmt.Errorf("%w: model %q not in catalog", ErrUnsupportedDevice, model)
	}
	if spec.Bitset == "" {
		return nil, fmt.Errorf("%w: model %q has no capability bitset", ErrUnsupportedDevice, model)
	}
	bits, ok := new(big.Int).SetString(spec.Bitset, 16)
	if !ok {
		return nil, fmt.Errorf("invalid bitset for model %q", model)
	}
	fw, err := ParseFirmware(firmware)
	if err != nil {
		return nil, err
	}

	p := &Profile{Model: model, Name: spec.Name, Firmware: fw}
	for _, fs := range c.Flags {
		f, known := ParseFlag(fs.Name)
		if !known || bits.Bit(int(fs.Bit)) == 0 {
			continue
		}
		if fs.MinFirmware != "" {
			required, err := ParseFirmware(fs.MinFirmware)
			if err != nil {
				return nil, fmt.Errorf("flag %s: %w", fs.Name, err)
			}
			if !fw.AtLeast(required) {
				continue
			}
		}
		p.flags[f] = true
	}
	if spec.SelfCleanArea != nil {
		p.SelfCleanArea = *spec.SelfCleanArea
	}
	if spec.SelfCleanTime != nil {
		p.SelfCleanTime = *spec.SelfCleanTime
	}
	if spec.WetnessLevel != nil {
		p.WetnessLevel = *spec.WetnessLevel
	}
	p.options = prune(p)
	return p, nil
}
