// Package boxcode parses box code labels of the shape CC##[LOC]: a 2-letter
// category prefix, a box number, and an optional location suffix.
package boxcode

// UnknownCode is the sentinel box code for photos with no detected label.
const UnknownCode = "UNK"

// Key maps category prefixes and location suffixes to display names.
type Key struct {
	Categories map[string]string `yaml:"categories"`
	Locations  map[string]string `yaml:"locations"`
}

// DefaultKey returns the built-in box key.
func DefaultKey() Key {
	return Key{
		Categories: map[string]string{
			"DO": "Documents",
			"KN": "Knickknacks",
			"OS": "Office Supplies",
			"CL": "Clothing",
			"KT": "Kitchen Items",
			"BK": "Books",
			"EL": "Electronics",
			"TO": "Tools",
			"ME": "Memorabilia",
			"DC": "Decor Items",
			"TR": "Toys",
			"PI": "Pictures",
			"AN": "Antiques",
			"GE": "Genealogy Files",
			"MG": "Magazines/Newspapers",
		},
		Locations: map[string]string{
			"L":  "Living Room",
			"M":  "Mom's Room",
			"G1": "Guest Room 1",
			"G2": "Guest Room 2",
			"S":  "Storage Room",
		},
	}
}

// Resolution is the human-readable reading of a box code.
type Resolution struct {
	CategoryName string
	LocationName string
	Friendly     string
}

// Resolve parses a box code into category and optional location names.
// The category is always the first two characters (UNK when shorter); the
// location is matched on the last two characters, then the last one, and
// only when the code is longer than two characters. Unknown codes resolve
// to "Unknown" / "". Never fails; an empty code is treated as UNK.
func (k Key) Resolve(code string) Resolution {
	if code == "" {
		code = UnknownCode
	}

	category := UnknownCode
	if len(code) >= 2 {
		category = code[:2]
	}

	location := ""
	if len(code) > 2 {
		if _, ok := k.Locations[code[len(code)-2:]]; ok {
			location = code[len(code)-2:]
		} else if _, ok := k.Locations[code[len(code)-1:]]; ok {
			location = code[len(code)-1:]
		}
	}

	categoryName, ok := k.Categories[category]
	if !ok {
		categoryName = "Unknown"
	}
	locationName := k.Locations[location]

	friendly := categoryName
	if locationName != "" {
		friendly += " - " + locationName
	}

	return Resolution{
		CategoryName: categoryName,
		LocationName: locationName,
		Friendly:     friendly,
	}
}
