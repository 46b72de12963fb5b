package systems

import "github.com/gdamore/tcell/v2"

// Entity styles; the renderer dims them by cell light
var (
	PlayerStyle     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	MonsterStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	ProjectileStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)
