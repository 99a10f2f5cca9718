package probe

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// CheckLogForThrottling scans the log file for ThrottlingException errors
// reported by the model API.
func CheckLogForThrottling(logFileName string) bool {
	file, err := os.Open(logFileName)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), "ThrottlingException") {
			return true
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Printf("Error reading log file: %v\n", err)
	}

	return false
}
