package lib

import (
	"bytes"
	"encoding/gob"
	"os"
	"path/filepath"
)

func Exists(path string) bool {
	if _, err := os.Stat(path); err == nil {
		return true
	} else if os.IsNotExist(err) {
		return false
	}

	return true
}

/*
	return an encoded object as bytes
*/
func Marshal(v interface{}) ([]byte, error) {
	b := new(bytes.Buffer)
	err := gob.NewEncoder(b).Encode(v)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

/*
	return a decoded object from bytes
*/
func Unmarshal(data []byte, v interface{}) error {
	b := bytes.NewBuffer(data)
	return gob.NewDecoder(b).Decode(v)
}

/*
	DefaultRoot is where the catalog cache lives when no root is
	configured.
*/
func DefaultRoot() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "kparts"
	}

	return filepath.Join(dir, "kparts")
}
