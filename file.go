package photjson

import "os"

// ReadFile reads the named file and parses its contents as a single
// JSON document. Grounded on original_source's phot_read_from_file.
func ReadFile(path string) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ReadFileWithOptions is ReadFile with parser options applied.
func ReadFileWithOptions(path string, opts ...Option) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseWithOptions(data, opts...)
}

// WriteFile serializes v and writes it to the named file, creating it
// with mode perm if it does not already exist. Grounded on
// original_source's phot_write_to_file.
func WriteFile(path string, v *Value, perm os.FileMode) error {
	data, err := Stringify(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}
