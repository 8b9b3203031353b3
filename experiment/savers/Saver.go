// Package savers implements saving and loading of experiment results
package savers

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kbandits/kbandits/experiment"
)

// Extension is the file extension of saved results
const Extension = ".bin"

// Save saves the result of an experiment to disk at filename
func Save(filename string, r experiment.Result) error {
	// Open the file to save to
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %w", err)
	}
	defer file.Close()

	// Encode and save the file
	en := gob.NewEncoder(file)
	if err = en.Encode(r); err != nil {
		return fmt.Errorf("save: could not encode result: %w", err)
	}

	return file.Close()
}

// LoadData loads and returns the result saved by Save
func LoadData(filename string) (experiment.Result, error) {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		return experiment.Result{}, fmt.Errorf("loadData: could not open "+
			"data file: %w", err)
	}
	defer file.Close()

	// Create the decoder and the variable to store the data in
	dec := gob.NewDecoder(file)
	var data experiment.Result

	// Decode the data
	if err = dec.Decode(&data); err != nil {
		return experiment.Result{}, fmt.Errorf("loadData: could not "+
			"decode data: %w", err)
	}

	return data, nil
}

// Filename returns the path of the i-th result of an experiment named
// name saved in dir
func Filename(dir, name string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("%v%v%v", name, i, Extension))
}
