package service

import (
	"encoding/json"
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/malinduGamage/FRACTALIS/misc"
)

type settings struct {
	logger bslogger.Logger

	Address string
}

func newSettings(settingsFile string) settings {
	s := settings{
		logger: bslogger.NewLogger("RendererSettings", bslogger.Normal, nil),
	}
	if settingsFile != "" {
		err, fileBytes := misc.ReadFile(settingsFile)
		misc.CheckError(err, s.logger, misc.Fatal)
		misc.CheckError(json.Unmarshal(fileBytes, &s), s.logger, misc.Fatal)
	}
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *settings) String() string {
	output := "\nRenderer settings\n"
	output += fmt.Sprintf("Address: %s\n", s.Address)
	return output
}

func (s *settings) Verify() error {
	if s.Address == "" {
		s.Address = fmt.Sprintf("%s:%s", misc.GetLocalAddress(), "51000")
	}
	return nil
}
