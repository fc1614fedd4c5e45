package doctor

import (
	"context"
	"fmt"

	"github.com/conn-castle/wp-proxy/internal/messages"
	"github.com/conn-castle/wp-proxy/internal/runner"
	"github.com/conn-castle/wp-proxy/internal/settings"
	"github.com/conn-castle/wp-proxy/internal/tool"
)

// CheckPackageManager verifies the configured package manager runs.
func CheckPackageManager(ctx context.Context, r runner.Runner, cfg settings.InstallSettings) Result {
	res, err := r.Run(ctx, runner.Command{Name: cfg.PackageManager, Args: []string{cfg.VersionArg}})
	if err != nil || !res.Success() {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNamePackageManager,
			Message:        fmt.Sprintf(messages.DoctorPackageManagerMissingFmt, cfg.PackageManager),
			Recommendation: fmt.Sprintf(messages.DoctorPackageManagerRecommendFmt, cfg.PackageManager, cfg.DocsURL),
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePackageManager,
		Message:   fmt.Sprintf(messages.DoctorPackageManagerFoundFmt, cfg.PackageManager),
	}
}

// CheckTool probes the proxy tool.
func CheckTool(ctx context.Context, r runner.Runner, name string) Result {
	if !tool.Probe(ctx, r, name) {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTool,
			Message:        fmt.Sprintf(messages.DoctorToolMissingFmt, name),
			Recommendation: messages.DoctorToolMissingRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameTool,
		Message:   fmt.Sprintf(messages.DoctorToolInstalledFmt, name),
	}
}
