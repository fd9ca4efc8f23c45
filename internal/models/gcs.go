package models

import (
	"fmt"
	"path"
	"strings"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common"
)

type CloudStoragePayload struct {
	Filename string
	Path     string
}

func (c CloudStoragePayload) GetFilePath() string {
	if c.Path == "" {
		return c.Filename
	}
	return fmt.Sprintf("%s/%s", c.Path, c.Filename)
}

func NewCloudStoragePayload(input string) CloudStoragePayload {
	input = path.Clean(input)

	dir := path.Dir(input)
	filename := path.Base(input)

	// handle the special case where input might be just a filename.
	if strings.TrimSpace(dir) == "." {
		dir = ""
	}

	return CloudStoragePayload{Filename: filename, Path: dir}
}

// NewRunReportPayload places a report under <basePath>/holdings_report/<date>/.
func NewRunReportPayload(basePath string, report RunReport) CloudStoragePayload {
	dir := path.Join(basePath, ReportFolderName, report.StartedAt.Format(common.DateFormatYYYYMMDD))
	return NewCloudStoragePayload(path.Join(dir, report.FileName()))
}
