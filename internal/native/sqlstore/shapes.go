package sqlstore

import (
	"encoding/json"
	"fmt"

	"github.com/alexiusacademia/framesec/internal/native"
)

// Parameter tuples are stored as JSON next to a kind tag naming the Go
// type, since several tuples share a frame type.

func shapeKind(s native.Shape) (string, error) {
	switch s.(type) {
	case native.ISection:
		return "I", nil
	case native.ChannelSection:
		return "Channel", nil
	case native.TeeSection:
		return "Tee", nil
	case native.SteelTeeSection:
		return "SteelTee", nil
	case native.ConcreteTeeSection:
		return "ConcreteTee", nil
	case native.AngleSection:
		return "Angle", nil
	case native.SteelAngleSection:
		return "SteelAngle", nil
	case native.ConcreteLSection:
		return "ConcreteL", nil
	case native.BoxSection:
		return "Box", nil
	case native.ConcreteBoxSection:
		return "ConcreteBox", nil
	case native.PipeSection:
		return "Pipe", nil
	case native.ConcretePipeSection:
		return "ConcretePipe", nil
	case native.RectangleSection:
		return "Rectangle", nil
	case native.PlateSection:
		return "Plate", nil
	case native.CircleSection:
		return "Circle", nil
	case native.RodSection:
		return "Rod", nil
	case native.GeneralSection:
		return "General", nil
	case native.Opaque:
		return "Opaque", nil
	}
	return "", fmt.Errorf("no storage kind for %T", s)
}

func decodeShape(kind string, data []byte) (native.Shape, error) {
	switch kind {
	case "I":
		return unmarshal[native.ISection](data)
	case "Channel":
		return unmarshal[native.ChannelSection](data)
	case "Tee":
		return unmarshal[native.TeeSection](data)
	case "SteelTee":
		return unmarshal[native.SteelTeeSection](data)
	case "ConcreteTee":
		return unmarshal[native.ConcreteTeeSection](data)
	case "Angle":
		return unmarshal[native.AngleSection](data)
	case "SteelAngle":
		return unmarshal[native.SteelAngleSection](data)
	case "ConcreteL":
		return unmarshal[native.ConcreteLSection](data)
	case "Box":
		return unmarshal[native.BoxSection](data)
	case "ConcreteBox":
		return unmarshal[native.ConcreteBoxSection](data)
	case "Pipe":
		return unmarshal[native.PipeSection](data)
	case "ConcretePipe":
		return unmarshal[native.ConcretePipeSection](data)
	case "Rectangle":
		return unmarshal[native.RectangleSection](data)
	case "Plate":
		return unmarshal[native.PlateSection](data)
	case "Circle":
		return unmarshal[native.CircleSection](data)
	case "Rod":
		return unmarshal[native.RodSection](data)
	case "General":
		return unmarshal[native.GeneralSection](data)
	case "Opaque":
		return unmarshal[native.Opaque](data)
	}
	return nil, fmt.Errorf("unknown storage kind %q", kind)
}

func unmarshal[S native.Shape](data []byte) (native.Shape, error) {
	var s S
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}
