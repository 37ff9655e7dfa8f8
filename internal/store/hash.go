package store

import (
	"encoding/json"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// HashResponses fingerprints a response document for duplicate detection.
// responses must already be canonical; encoding/json sorts map keys.
func HashResponses(model string, responses json.RawMessage) string {
	d := xxhash.New()
	d.WriteString(model)
	d.WriteString("\x00")
	d.Write(responses)
	return strconv.FormatUint(d.Sum64(), 16)
}
