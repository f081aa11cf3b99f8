package engine

import "strings"

// Anchor substrings of the Huorong log format. The format has no schema;
// these literals are the whole contract. They are gathered here rather
// than scattered so format drift is a one-file fix.
const (
	// MarkerProduct identifies entries produced by the ACE anti-cheat
	// scanner ("SGuard64" / "SGuardSvc64" both contain it).
	MarkerProduct = "SGuard"

	// MarkerFileOp labels the scanned file path field.
	MarkerFileOp = "操作文件："

	// MarkerResult labels the operation result field.
	MarkerResult = "操作结果："

	// MarkerBlocked is the full blocked-result line start.
	MarkerBlocked = "操作结果：已阻止"

	// MarkerOpType labels the operation type field and doubles as a
	// terminator for every other field.
	MarkerOpType = "操作类型："

	// MarkerProcess labels the acting process path field.
	MarkerProcess = "操作进程："

	// MarkerCmdline labels the process command line field.
	MarkerCmdline = "操作进程命令行："

	// MarkerCustomRule labels the triggered custom protection rule field.
	MarkerCustomRule = "触犯规则："

	// MarkerRuleSignature appears once per custom-rule log and anchors
	// format detection, not per-entry parsing.
	MarkerRuleSignature = "触犯自定义防护规则"
)

// Separator delimits entries in the raw log: a run of 60 '>' characters.
var Separator = strings.Repeat(">", 60)
