package oauth

import (
	"sort"
	"strings"

	"github.com/josejalvarezm/lti-launch-validator/internal/domain"
)

// fileReferencePrefix marks a value as a file to upload rather than signed data.
const fileReferencePrefix = "@"

// NormalizeOptions tunes how the normalized parameter string is built.
type NormalizeOptions struct {
	// KeepFileReferences signs values starting with "@". Legacy signers treat such
	// values as file references and leave them out of the signature, so by default
	// they are dropped too. Set this when the consumer signs them like any other value.
	KeepFileReferences bool
}

type pair struct {
	key, value string
}

// NormalizedString builds the normalized parameter string with default options.
func NormalizedString(params domain.Params) string {
	return NormalizeOptions{}.NormalizedString(params)
}

// NormalizedString encodes every signable name/value pair, sorts the pairs by
// encoded name and then by encoded value (byte order), and joins them as
// "name=value" with "&". oauth_signature and names ending in "_secret" are
// never signed.
func (o NormalizeOptions) NormalizedString(params domain.Params) string {
	pairs := make([]pair, 0, len(params))
	for name, values := range params {
		if !signable(name) {
			continue
		}
		key := Encode(name)
		for _, v := range values {
			if !o.KeepFileReferences && strings.HasPrefix(v, fileReferencePrefix) {
				continue
			}
			pairs = append(pairs, pair{key: key, value: Encode(v)})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].key == pairs[j].key {
			return pairs[i].value < pairs[j].value
		}
		return pairs[i].key < pairs[j].key
	})

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(p.value)
	}
	return b.String()
}

func signable(name string) bool {
	return name != domain.ParamSignature && !strings.HasSuffix(name, "_secret")
}
