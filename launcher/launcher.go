package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"llmbenchlauncher/config"
	"llmbenchlauncher/progress"
)

// Run spawns the external benchmark tool with the scenario's argv and the
// credential triple injected into its environment, and returns the child's
// exit code unmasked. The launcher applies no timeout and no retries of its
// own: the --timeout flag in the argv belongs to the tool, and any failure
// of the tool surfaces as its native exit status.
func Run(launch LaunchParams, scenario ScenarioParams, creds config.Credentials) (int, error) {
	if err := ValidateParams(scenario); err != nil {
		return 1, err
	}

	args := append([]string{launch.Script}, BuildArgs(scenario)...)
	cmd := exec.Command(launch.Python, args...)

	// Inject the triple on top of the inherited environment so it wins over
	// any values already present. Credential values are never logged.
	cmd.Env = append(os.Environ(), creds.Env()...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	// Create log file to track the composed invocation
	timestamp := time.Now().Format("20060102_150405")
	logFileName := fmt.Sprintf("launch_logs_%s.txt", timestamp)
	logFile, err := os.Create(logFileName)
	if err != nil {
		panic(fmt.Sprintf("Failed to create log file: %s", err.Error()))
	}
	defer logFile.Close()
	fmt.Fprintf(logFile, "Command: %s %s\n", launch.Python, strings.Join(args, " "))
	fmt.Fprintf(logFile, "Environment injected: %s, %s, %s\n",
		config.EnvAccessKeyID, config.EnvSecretAccessKey, config.EnvRegionName)

	startTime := time.Now()
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(logFile, "Error starting benchmark tool: %s\n", err.Error())
		return 1, fmt.Errorf("failed to start %s: %v", launch.Script, err)
	}

	// Elapsed-time bar up to the scenario timeout. Cosmetic only: the bar
	// never cancels the child, it just shows how far into the budget the
	// run is.
	pb := progress.NewTimerBar(int64(scenario.Timeout))
	pb.SetCaption("Benchmarking")
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if pb.Current() < pb.Total() {
					pb.Increment()
				}
			}
		}
	}()

	waitErr := cmd.Wait()
	close(done)
	pb.Finish()

	elapsed := time.Since(startTime)
	fmt.Fprintf(logFile, "Duration: %v\n", elapsed)

	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			code := exitErr.ExitCode()
			fmt.Fprintf(logFile, "Benchmark tool exited with code %d\n", code)
			return code, nil
		}
		fmt.Fprintf(logFile, "Error waiting for benchmark tool: %s\n", waitErr.Error())
		return 1, waitErr
	}

	fmt.Fprintf(logFile, "Benchmark tool exited with code 0\n")
	return 0, nil
}
