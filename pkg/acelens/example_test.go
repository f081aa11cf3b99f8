package acelens_test

import (
	"fmt"
	"log"

	"github.com/hexwatch/acelens/pkg/acelens"
)

func Example() {
	logText := "2024-01-04 03:15:00 文件防护\r\n" +
		"操作进程：D:\\Games\\SGuard64.exe\r\n" +
		"操作文件：C:\\Windows\\System32\\drivers\\storqosflt.sys\r\n" +
		"操作结果：已阻止\r\n" +
		"触犯规则：触犯自定义防护规则\r\n"

	result, err := acelens.Analyze(logText)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("attempts: %d, blocked: %d\n", result.TotalAttempts, result.BlockedAttempts)
	fmt.Printf("category: System Driver x%d\n", result.TargetCategories["System Driver"])
	fmt.Printf("peak: %s\n", result.HourBuckets[0].Range)
	// Output:
	// attempts: 1, blocked: 1
	// category: System Driver x1
	// peak: 03:00-03:59
}
