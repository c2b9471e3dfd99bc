package profile

import (
	"encoding/json"
	"fmt"
)

// Profiles travel as JSON objects carrying a "shape" discriminator next to
// the variant's own fields, e.g. {"shape":"circle","diameter":300}.

type envelope struct {
	Shape string `json:"shape"`
}

type taperedJSON struct {
	Positions          []float64         `json:"positions"`
	Profiles           []json.RawMessage `json:"profiles"`
	InterpolationOrder []int             `json:"interpolation_order,omitempty"`
}

// Marshal encodes p with its shape discriminator. A nil profile encodes as
// JSON null.
func Marshal(p Profile) ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	var body []byte
	var err error
	if t, ok := p.(Tapered); ok {
		tj := taperedJSON{Positions: t.Positions, InterpolationOrder: t.InterpolationOrder}
		for i, sub := range t.Profiles {
			raw, err := Marshal(sub)
			if err != nil {
				return nil, fmt.Errorf("tapered breakpoint %d: %w", i, err)
			}
			tj.Profiles = append(tj.Profiles, raw)
		}
		body, err = json.Marshal(tj)
	} else {
		body, err = json.Marshal(p)
	}
	if err != nil {
		return nil, err
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	shape, _ := json.Marshal(p.Shape().String())
	fields["shape"] = shape
	return json.Marshal(fields)
}

// Unmarshal decodes a profile written by Marshal. JSON null and an
// "explicit" shape both decode to a nil profile.
func Unmarshal(data []byte) (Profile, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	shape, err := ParseShape(env.Shape)
	if err != nil {
		return nil, err
	}

	switch shape {
	case ShapeExplicit:
		return nil, nil
	case ShapeI:
		return decodeInto[ISection](data)
	case ShapeFabricatedI:
		return decodeInto[FabricatedISection](data)
	case ShapeChannel:
		return decodeInto[Channel](data)
	case ShapeAngle:
		return decodeInto[Angle](data)
	case ShapeT:
		return decodeInto[TSection](data)
	case ShapeBox:
		return decodeInto[Box](data)
	case ShapeFabricatedBox:
		return decodeInto[FabricatedBox](data)
	case ShapeTube:
		return decodeInto[Tube](data)
	case ShapeRectangle:
		return decodeInto[Rectangle](data)
	case ShapeCircle:
		return decodeInto[Circle](data)
	case ShapeZ:
		return decodeInto[ZSection](data)
	case ShapeFreeForm:
		return decodeInto[FreeForm](data)
	case ShapeTapered:
		var tj taperedJSON
		if err := json.Unmarshal(data, &tj); err != nil {
			return nil, err
		}
		t := Tapered{Positions: tj.Positions, InterpolationOrder: tj.InterpolationOrder}
		for i, raw := range tj.Profiles {
			sub, err := Unmarshal(raw)
			if err != nil {
				return nil, fmt.Errorf("tapered breakpoint %d: %w", i, err)
			}
			t.Profiles = append(t.Profiles, sub)
		}
		return t, nil
	}
	return nil, fmt.Errorf("unhandled profile shape %s", shape)
}

func decodeInto[P Profile](data []byte) (Profile, error) {
	var p P
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return p, nil
}
