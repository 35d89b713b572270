package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Archive folder names inside the result zip.
const (
	zipSummaryDir = "各单位汇总"
	zipDetailDir  = "各单位明细"
	zipPunchDir   = "原始打卡记录"
)

// CreateZip packages the run's outputs: the overall summary and detail
// workbooks at the root, the per-unit workbooks under their folders, and the
// split raw punch records. Missing files are skipped silently so a partial
// run still produces an archive.
func CreateZip(zipPath, summaryFile, detailFile string, deptSummaries, deptDetails []DeptFile, punchFiles []string) error {
	f, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("failed to create archive %s: %w", zipPath, err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	defer w.Close()

	addFile := func(src, dst string) error {
		if _, err := os.Stat(src); err != nil {
			return nil
		}
		in, err := os.Open(src)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", src, err)
		}
		defer in.Close()

		out, err := w.Create(dst)
		if err != nil {
			return fmt.Errorf("failed to add %s to archive: %w", dst, err)
		}
		_, err = io.Copy(out, in)
		return err
	}

	if err := addFile(summaryFile, filepath.Base(summaryFile)); err != nil {
		return err
	}
	if err := addFile(detailFile, filepath.Base(detailFile)); err != nil {
		return err
	}
	for _, df := range deptSummaries {
		if err := addFile(df.Path, zipSummaryDir+"/"+df.Department+"_汇总.xlsx"); err != nil {
			return err
		}
	}
	for _, df := range deptDetails {
		if err := addFile(df.Path, zipDetailDir+"/"+df.Department+"_明细.xlsx"); err != nil {
			return err
		}
	}
	for _, path := range punchFiles {
		if err := addFile(path, zipPunchDir+"/"+filepath.Base(path)); err != nil {
			return err
		}
	}

	logrus.WithField("path", zipPath).Info("Result archive written")
	return nil
}
