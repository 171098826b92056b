package render

// LogoWidth is the column every logo line is padded to; fact lines that
// outlive the logo are indented by it.
const LogoWidth = 32

// Logo is the fixed ASCII-art block printed alongside the facts.
var Logo = []string{
	"       :#.                      ",
	"       :#-:****************+    ",
	"         -::::::::.......:::    ",
	"   .#*               -**=:.     ",
	"    #-::            =%%=:.      ",
	"     --::.        :*%#::        ",
	"       -:::.    .=%%-:          ",
	"         :::=######:.           ",
	"          .::::::..             ",
}
