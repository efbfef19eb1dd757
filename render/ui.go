package render

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/star-defense/engine"
	"github.com/lixenwraith/star-defense/event"
	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/status"
	"github.com/lixenwraith/star-defense/upgrade"
)

const (
	hpBarWidth  = 20
	maxPips     = 30
	modalWidth  = 34
	modalHeight = 7
	modalGap    = 2
)

// UI is the screen-side notifier: it keeps the HUD snapshot, the open offer list and toasts,
// and draws the HUD, upgrade modal, toast, title and game over screens
// Like the game, it is owned by the frame loop goroutine
type UI struct {
	hud      event.Snapshot
	offers   []upgrade.Definition
	selected int

	toast     string
	toastLeft time.Duration

	finalScore int
}

func NewUI() *UI { return &UI{} }

func (u *UI) HUD(s event.Snapshot) { u.hud = s }

func (u *UI) LevelUp(offers []upgrade.Definition) {
	u.offers = append(u.offers[:0], offers...)
	u.selected = 0
}

func (u *UI) Resume() {
	u.offers = u.offers[:0]
	u.selected = 0
}

func (u *UI) GameOver(score int) {
	u.finalScore = score
}

func (u *UI) Toast(msg string) {
	u.toast = msg
	u.toastLeft = parameter.ToastDuration
}

// Reset clears per-run screen state on restart
func (u *UI) Reset() {
	u.Resume()
	u.finalScore = 0
	u.toast, u.toastLeft = "", 0
}

// Update ages the toast by wall-clock dt
func (u *UI) Update(dt time.Duration) {
	if u.toastLeft <= 0 {
		return
	}
	if u.toastLeft -= dt; u.toastLeft <= 0 {
		u.toast, u.toastLeft = "", 0
	}
}

// Toasting returns the visible toast, if any
func (u *UI) Toasting() (string, bool) { return u.toast, u.toastLeft > 0 }

// Offers returns the open upgrade choices
func (u *UI) Offers() []upgrade.Definition { return u.offers }

// Selected is the highlighted offer index
func (u *UI) Selected() int { return u.selected }

// MoveSelection shifts the highlight by delta, wrapping
func (u *UI) MoveSelection(delta int) {
	n := len(u.offers)
	if n == 0 {
		return
	}
	u.selected = ((u.selected+delta)%n + n) % n
}

// SelectedID returns the highlighted upgrade id
func (u *UI) SelectedID() (string, bool) {
	return u.OfferID(u.selected)
}

// OfferID returns the id at index i
func (u *UI) OfferID(i int) (string, bool) {
	if i < 0 || i >= len(u.offers) {
		return "", false
	}
	return u.offers[i].ID, true
}

func (u *UI) Render(ctx Context, buf *Buffer) {
	switch ctx.Phase {
	case engine.PhaseTitle:
		u.renderTitle(ctx, buf)
		return
	case engine.PhaseGameOver:
		u.renderHUD(ctx, buf)
		u.renderGameOver(ctx, buf)
		return
	}
	u.renderHUD(ctx, buf)
	if ctx.Phase == engine.PhaseSelecting {
		u.renderModal(ctx, buf)
	}
	if ctx.Phase == engine.PhasePaused {
		buf.TextCentered(parameter.HUDRows+ctx.View.FieldRows()/2, " PAUSED  p to resume ", tcell.StyleDefault.Background(RgbHUDBg).Foreground(RgbText).Bold(true))
	}
	u.renderToast(ctx, buf)
}

func (u *UI) renderHUD(ctx Context, buf *Buffer) {
	w, _ := buf.Size()
	bg := tcell.StyleDefault.Background(RgbHUDBg)
	buf.Fill(0, 0, w, parameter.HUDRows, ' ', bg)
	text := bg.Foreground(RgbText)
	dim := bg.Foreground(RgbTextDim)

	s := u.hud
	x := buf.Text(1, 0, fmt.Sprintf("SCORE %d", s.Score), text.Bold(true))
	x = buf.Text(x+2, 0, "HP ", dim)

	ratio := 0.0
	if s.MaxHP > 0 {
		ratio = s.HP / s.MaxHP
	}
	filled := min(int(ratio*hpBarWidth+0.5), hpBarWidth)
	hpColor := RgbHPHigh
	if ratio < 0.3 {
		hpColor = RgbHPLow
	}
	for i := range hpBarWidth {
		if i < filled {
			buf.Set(x+i, 0, '█', bg.Foreground(hpColor))
		} else {
			buf.Set(x+i, 0, '░', bg.Foreground(RgbEmpty))
		}
	}
	x = buf.Text(x+hpBarWidth+1, 0, fmt.Sprintf("%.0f/%.0f", max(s.HP, 0), s.MaxHP), text)

	x = buf.Text(x+2, 0, fmt.Sprintf("LV %d ", ctx.Game.Level()+1), dim)
	x = u.renderPips(buf, x, bg)

	elapsed := s.Elapsed.Truncate(time.Second)
	clock := fmt.Sprintf("%02d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
	buf.Text(max(w-len(clock)-1, x+2), 0, clock, text)

	if ctx.Debug {
		buf.Text(1, 1, debugLine(ctx.Game.Metrics(), ctx.Game.RunID().String()), dim)
	}
}

// renderPips draws collected energy toward the next level, compressing long thresholds
func (u *UI) renderPips(buf *Buffer, x int, bg tcell.Style) int {
	have, need := u.hud.Energy, u.hud.MaxEnergy
	if need <= 0 {
		return x
	}
	slots := min(need, maxPips)
	lit := have * slots / need
	for i := range slots {
		if i < lit {
			buf.Set(x+i, 0, '●', bg.Foreground(RgbEnergy))
		} else {
			buf.Set(x+i, 0, '○', bg.Foreground(RgbEmpty))
		}
	}
	return x + slots
}

func debugLine(reg *status.Registry, runID string) string {
	var sb strings.Builder
	sb.WriteString("run ")
	sb.WriteString(runID[:min(8, len(runID))])
	reg.Ints.Range(func(k string, p *atomic.Int64) {
		fmt.Fprintf(&sb, " %s=%d", k, p.Load())
	})
	reg.Floats.Range(func(k string, p *status.AtomicFloat) {
		fmt.Fprintf(&sb, " %s=%.1f", k, p.Load())
	})
	return sb.String()
}

func tierColor(t upgrade.Tier) tcell.Color {
	switch t {
	case upgrade.TierT2:
		return RgbTier2
	case upgrade.TierT3:
		return RgbTier3
	case upgrade.TierCurse:
		return RgbCurse
	}
	return RgbTier1
}

func (u *UI) renderModal(ctx Context, buf *Buffer) {
	w, h := buf.Size()
	n := len(u.offers)
	if n == 0 {
		return
	}
	card := modalWidth
	if total := n*card + (n-1)*modalGap; total > w-2 {
		card = max((w-2-(n-1)*modalGap)/n, 12)
	}
	total := n*card + (n-1)*modalGap
	left := max((w-total)/2, 0)
	top := max(parameter.HUDRows+(h-parameter.HUDRows-modalHeight)/2, parameter.HUDRows)

	buf.TextCentered(top-1, "LEVEL UP  choose 1-"+fmt.Sprint(n)+" or arrows + enter", tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText).Bold(true))

	for i, d := range u.offers {
		x := left + i*(card+modalGap)
		border := RgbTextDim
		if i == u.selected {
			border = RgbSelect
		}
		face := tcell.StyleDefault.Background(RgbHUDBg)
		buf.Fill(x, top, card, modalHeight, ' ', face)
		drawBox(buf, x, top, card, modalHeight, face.Foreground(border))

		buf.Text(x+2, top+1, fmt.Sprintf("%d %s", i+1, d.Tier.Label()), face.Foreground(tierColor(d.Tier)).Bold(true))
		buf.Text(x+2, top+2, clip(d.Name, card-4), face.Foreground(RgbText).Bold(true))
		for j, line := range wrap(d.Description, card-4, modalHeight-4) {
			buf.Text(x+2, top+3+j, line, face.Foreground(RgbTextDim))
		}
	}
}

func drawBox(buf *Buffer, x, y, w, h int, style tcell.Style) {
	for i := x + 1; i < x+w-1; i++ {
		buf.Set(i, y, '─', style)
		buf.Set(i, y+h-1, '─', style)
	}
	for j := y + 1; j < y+h-1; j++ {
		buf.Set(x, j, '│', style)
		buf.Set(x+w-1, j, '│', style)
	}
	buf.Set(x, y, '┌', style)
	buf.Set(x+w-1, y, '┐', style)
	buf.Set(x, y+h-1, '└', style)
	buf.Set(x+w-1, y+h-1, '┘', style)
}

func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// wrap splits s into at most lines rows of width n at word boundaries
func wrap(s string, n, lines int) []string {
	var out []string
	var cur []rune
	for _, word := range strings.Fields(s) {
		wr := []rune(word)
		if len(cur) > 0 && len(cur)+1+len(wr) > n {
			out = append(out, string(cur))
			cur = cur[:0]
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, wr...)
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	for i := range out {
		out[i] = clip(out[i], n)
	}
	if len(out) > lines {
		out = out[:lines]
	}
	return out
}

func (u *UI) renderToast(ctx Context, buf *Buffer) {
	msg, ok := u.Toasting()
	if !ok {
		return
	}
	style := tcell.StyleDefault.Background(RgbToastBg).Foreground(RgbGold).Bold(true)
	buf.TextCentered(parameter.HUDRows+1, "  "+msg+"  ", style)
}

func (u *UI) renderTitle(ctx Context, buf *Buffer) {
	_, h := buf.Size()
	mid := h / 2
	title := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbPlayer).Bold(true)
	body := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	dim := body.Foreground(RgbTextDim)

	buf.TextCentered(mid-3, "S T A R   D E F E N S E", title)
	buf.TextCentered(mid-1, "Survive the swarm. Collect energy. Choose upgrades.", body)
	buf.TextCentered(mid+1, "mouse / arrows / wasd  steer      p  pause      q  quit", dim)
	if blink(ctx.Now) {
		buf.TextCentered(mid+3, "press ENTER to launch", body.Bold(true))
	}
}

func (u *UI) renderGameOver(ctx Context, buf *Buffer) {
	_, h := buf.Size()
	mid := parameter.HUDRows + (h-parameter.HUDRows)/2
	style := tcell.StyleDefault.Background(RgbBackground)

	buf.TextCentered(mid-2, "SHIP DESTROYED", style.Foreground(RgbHPLow).Bold(true))
	buf.TextCentered(mid, fmt.Sprintf("FINAL SCORE %d", u.finalScore), style.Foreground(RgbGold).Bold(true))
	buf.TextCentered(mid+2, "ENTER restarts   q quits", style.Foreground(RgbText))
}

func blink(now time.Duration) bool {
	return (now/(500*time.Millisecond))%2 == 0
}
