package stringify

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// JSONOptions returns json options that encode every [Value], [*Mapping] and
// [*Sequence] met by [json.Marshal] through Stringify with cfg.
//
// Indentation of the surrounding document is governed by the jsontext
// options passed to json.Marshal, not by cfg.Indent.
func JSONOptions(cfg *Config) json.Options {
	return json.WithMarshalers(MarshalFunc(cfg))
}

// MarshalFunc creates [json.Marshalers] which intercept marshaling of
// [Value], [*Mapping] and [*Sequence] and encode them with Stringify using
// cfg.
//
// Values that produce no output (absent, callable, symbolic) are written as
// JSON null, since the surrounding Go value already reserved a slot for
// them.
func MarshalFunc(cfg *Config) *json.Marshalers {
	return json.NewMarshalers(
		json.MarshalFuncV2(func(enc *jsontext.Encoder, v Value, _ json.Options) error {
			return writeValue(enc, v, cfg)
		}),
		json.MarshalFuncV2(func(enc *jsontext.Encoder, m *Mapping, _ json.Options) error {
			return writeValue(enc, MappingOf(m), cfg)
		}),
		json.MarshalFuncV2(func(enc *jsontext.Encoder, s *Sequence, _ json.Options) error {
			return writeValue(enc, SequenceOf(s), cfg)
		}),
	)
}

// MarshalJSONV2 implements [json.MarshalerV2] using the default Config.
func (v Value) MarshalJSONV2(enc *jsontext.Encoder, _ json.Options) error {
	return writeValue(enc, v, nil)
}

// MarshalJSONV2 implements [json.MarshalerV2] using the default Config.
func (m *Mapping) MarshalJSONV2(enc *jsontext.Encoder, _ json.Options) error {
	return writeValue(enc, MappingOf(m), nil)
}

// MarshalJSONV2 implements [json.MarshalerV2] using the default Config.
func (s *Sequence) MarshalJSONV2(enc *jsontext.Encoder, _ json.Options) error {
	return writeValue(enc, SequenceOf(s), nil)
}

func writeValue(enc *jsontext.Encoder, v Value, cfg *Config) error {
	text, ok, err := Stringify(v, cfg)
	if err != nil {
		return fmt.Errorf("failed to stringify %s: %w", v.Kind(), err)
	}
	if !ok {
		if err := enc.WriteToken(jsontext.Null); err != nil {
			return fmt.Errorf("failed to write null token: %w", err)
		}
		return nil
	}
	if err := enc.WriteValue(jsontext.Value(text)); err != nil {
		return fmt.Errorf("failed to write encoded %s: %w", v.Kind(), err)
	}
	return nil
}
