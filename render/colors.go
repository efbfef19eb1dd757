package render

import "github.com/gdamore/tcell/v2"

// Palette (Tokyo Night base)
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)
	RgbHUDBg      = tcell.NewRGBColor(36, 40, 59)
	RgbText       = tcell.NewRGBColor(192, 202, 245)
	RgbTextDim    = tcell.NewRGBColor(86, 95, 137)

	RgbPlayer     = tcell.NewRGBColor(0, 255, 204)
	RgbTarget     = tcell.NewRGBColor(60, 90, 90)
	RgbProjectile = tcell.NewRGBColor(255, 255, 102)
	RgbMissile    = tcell.NewRGBColor(255, 140, 0)
	RgbEnemy      = tcell.NewRGBColor(255, 85, 85)
	RgbEnemyHit   = tcell.NewRGBColor(255, 255, 255)
	RgbDrop       = tcell.NewRGBColor(0, 200, 255)
	RgbGold       = tcell.NewRGBColor(255, 215, 0)
	RgbBlade      = tcell.NewRGBColor(170, 140, 255)

	RgbHPHigh  = tcell.NewRGBColor(80, 220, 100)
	RgbHPLow   = tcell.NewRGBColor(255, 80, 80)
	RgbEnergy  = tcell.NewRGBColor(0, 200, 255)
	RgbEmpty   = tcell.NewRGBColor(60, 64, 90)
	RgbCurse   = tcell.NewRGBColor(200, 60, 200)
	RgbTier1   = tcell.NewRGBColor(160, 170, 200)
	RgbTier2   = tcell.NewRGBColor(80, 160, 255)
	RgbTier3   = tcell.NewRGBColor(255, 200, 60)
	RgbSelect  = tcell.NewRGBColor(0, 255, 204)
	RgbToastBg = tcell.NewRGBColor(60, 20, 70)

	RgbExplosion = tcell.NewRGBColor(255, 120, 40)
	RgbLightning = tcell.NewRGBColor(140, 220, 255)
	RgbPulse     = tcell.NewRGBColor(120, 160, 255)
	RgbFlashRed  = tcell.NewRGBColor(90, 10, 10)
	RgbFlashWhit = tcell.NewRGBColor(200, 200, 200)
)

// Base style for the play field
var StyleField = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
