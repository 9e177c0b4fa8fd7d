package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/ecorewards/internal/common"
	"github.com/dmitrijs2005/ecorewards/internal/waste"
)

const maxImageSize = 10 << 20

// Scan classifies the image at path, shows the verdict and asks the user
// to confirm the waste type. An empty answer cancels without recording.
func (a *App) Scan(ctx context.Context, path string) error {
	image, err := readImage(path)
	if err != nil {
		return err
	}

	out := a.scan.Scan(ctx, image)
	c := out.Classification
	if out.Simulated {
		fmt.Fprintf(a.out, "Classifier unavailable (%v); showing a simulated result.\n", out.Reason)
	}

	g := c.WasteType.Guidance()
	fmt.Fprintf(a.out, "Detected: %s (%s), confidence %.0f%%, %d object(s), worth %d points\n",
		c.PredictedClass, c.WasteType.Label(), c.Confidence*100, c.ObjectCount, c.Points)
	fmt.Fprintf(a.out, "  %s\n  Tip: %s\n  Disposal: %s\n", g.Description, g.Tips, g.Disposal)

	names := make([]string, 0, len(waste.Types))
	for _, t := range waste.Types {
		names = append(names, string(t))
	}
	answer, err := getSimpleText(a.reader, "Select the correct waste type ("+strings.Join(names, ", ")+"), empty to cancel", a.out)
	if err != nil {
		return err
	}
	if answer == "" {
		fmt.Fprintln(a.out, "Scan cancelled")
		return nil
	}
	selection, ok := waste.ParseType(answer)
	if !ok {
		return fmt.Errorf("%w: unknown waste type %q", common.ErrorValidation, answer)
	}

	e := a.scan.Confirm(ctx, selection, c)
	if e.WasCorrect {
		fmt.Fprintf(a.out, "Correct classification! +%d points (total %d)\n", e.PointsAwarded, a.ledger.Stats().Points)
	} else {
		fmt.Fprintf(a.out, "Incorrect classification: it was %s. No points this time.\n", c.WasteType.Label())
	}
	return nil
}

func readImage(path string) ([]byte, error) {
	st, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: file %s does not exist", common.ErrorValidation, path)
	case err != nil:
		return nil, err
	case st.IsDir():
		return nil, fmt.Errorf("%w: %s is a directory", common.ErrorValidation, path)
	case st.Size() == 0:
		return nil, fmt.Errorf("%w: %s is empty", common.ErrorValidation, path)
	case st.Size() > maxImageSize:
		return nil, fmt.Errorf("%w: %s is larger than 10 MiB", common.ErrorValidation, path)
	}
	return os.ReadFile(path)
}
