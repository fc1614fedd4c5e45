package doctor

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/conn-castle/wp-proxy/internal/messages"
	"github.com/conn-castle/wp-proxy/internal/snippet"
	"github.com/conn-castle/wp-proxy/internal/wpconfig"
)

var accessFunc = unix.Access

// CheckConfigFile locates wp-config.php from start. The path is empty unless the
// result is OK.
func CheckConfigFile(sys wpconfig.System, start string) (Result, string) {
	path, err := wpconfig.Locate(sys, start)
	switch {
	case errors.Is(err, wpconfig.ErrConfigNotFound):
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfigFile,
			Message:        fmt.Sprintf(messages.DoctorConfigMissingFmt, start),
			Recommendation: messages.DoctorConfigMissingRecommend,
		}, ""
	case err != nil:
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameConfigFile,
			Message:   fmt.Sprintf(messages.DoctorConfigLocateFailedFmt, err),
		}, ""
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfigFile,
		Message:   fmt.Sprintf(messages.DoctorConfigFoundFmt, path),
	}, path
}

// CheckAnchor verifies the insertion anchor appears exactly once in content.
func CheckAnchor(content string) Result {
	_, _, err := wpconfig.Split(content)
	switch {
	case errors.Is(err, wpconfig.ErrAnchorNotFound):
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameAnchor,
			Message:        messages.DoctorAnchorMissing,
			Recommendation: messages.DoctorAnchorMissingRecommend,
		}
	case errors.Is(err, wpconfig.ErrAmbiguousAnchor):
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameAnchor,
			Message:        messages.DoctorAnchorAmbiguous,
			Recommendation: messages.DoctorAnchorAmbiguousRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameAnchor,
		Message:   messages.DoctorAnchorFound,
	}
}

// CheckWritable verifies the current user may write path.
func CheckWritable(path string) Result {
	if err := accessFunc(path, unix.W_OK); err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameWritable,
			Message:        fmt.Sprintf(messages.DoctorNotWritableFmt, path, err),
			Recommendation: messages.DoctorNotWritableRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameWritable,
		Message:   fmt.Sprintf(messages.DoctorWritableFmt, path),
	}
}

// CheckConstants reports which proxy constants content already defines.
// Missing constants are a warning: `wp-proxy config` adds them.
func CheckConstants(content string, s snippet.Snippet) Result {
	present := s.Present(content)
	if len(present) == 0 {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameConstants,
			Message:        messages.DoctorConstantsMissing,
			Recommendation: messages.DoctorConstantsMissingRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConstants,
		Message:   fmt.Sprintf(messages.DoctorConstantsPresentFmt, strings.Join(present, ", ")),
	}
}

// CheckWordPress runs the config file checks in order. Checks that need the file
// are skipped when it cannot be located.
func CheckWordPress(sys wpconfig.System, start string, s snippet.Snippet) []Result {
	located, path := CheckConfigFile(sys, start)
	results := []Result{located}
	if path == "" {
		return results
	}
	data, err := sys.ReadFile(path)
	if err != nil {
		return append(results, Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameAnchor,
			Message:   fmt.Sprintf(messages.DoctorConfigReadFailedFmt, path, err),
		})
	}
	content := string(data)
	return append(results,
		CheckAnchor(content),
		CheckWritable(path),
		CheckConstants(content, s),
	)
}
