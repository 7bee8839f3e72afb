package misc

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func ReadFile(fileName string) (error, []byte) {
	if fileName == "" {
		return errors.New("no filename supplied"), []byte{}
	}
	// open file for reading
	file, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("unable to open %s - %s", fileName, err), []byte{}
	}
	// read contents from open file
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("unable to read %s - %s", fileName, err), []byte{}
	}
	// close file
	err = file.Close()
	if err != nil {
		return fmt.Errorf("unable to close %s - %s", fileName, err), []byte{}
	}

	return nil, fileBytes
}
