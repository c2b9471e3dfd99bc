package section

import (
	"encoding/json"
	"fmt"
	"os"
)

// File is the on-disk form of a batch of sections.
//
//	{
//	  "materials": {"S355": "steel", "C30/37": "concrete"},
//	  "sections": [
//	    {"name": "IPE300", "material": "S355",
//	     "profile": {"shape": "i", "height": 300, "width": 150, ...}}
//	  ]
//	}
type File struct {
	Materials map[string]string `json:"materials,omitempty"`
	Sections  []Section         `json:"sections"`
}

// LoadFromFile loads section definitions from a JSON file. Material
// families listed under "materials" override the per-section family.
func LoadFromFile(filepath string) ([]Section, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	materials := file.MaterialRefs()
	for i := range file.Sections {
		s := &file.Sections[i]
		if ref, ok := materials[s.Material.Name]; ok {
			s.Material = ref
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("section %d: %w", i+1, err)
		}
	}

	return file.Sections, nil
}

// MaterialRefs resolves the file's material table.
func (f *File) MaterialRefs() map[string]MaterialRef {
	out := make(map[string]MaterialRef, len(f.Materials))
	for name, family := range f.Materials {
		out[name] = NewMaterialRef(name, family)
	}
	return out
}

// SaveToFile writes sections as indented JSON.
func SaveToFile(filepath string, sections []Section) error {
	file := File{Materials: map[string]string{}, Sections: sections}
	for _, s := range sections {
		if s.Material.Name != "" {
			file.Materials[s.Material.Name] = s.Material.Family.String()
		}
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, append(data, '\n'), 0o644)
}
