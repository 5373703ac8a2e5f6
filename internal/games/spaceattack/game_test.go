package spaceattack

import (
	"strings"
	"testing"

	"github.com/vovakirdan/nebula-flow/internal/config"
	"github.com/vovakirdan/nebula-flow/internal/core"
	"github.com/vovakirdan/nebula-flow/internal/registry"
	"github.com/vovakirdan/nebula-flow/internal/reward"
	"github.com/vovakirdan/nebula-flow/internal/session"
)

func newGame(t *testing.T, lvl config.DifficultyPreset) *Game {
	t.Helper()
	g := New(registry.Options{Difficulty: lvl, Profiles: config.DefaultProfiles()})
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	g.Reset(cfg)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func steps(g *Game, n int) {
	empty := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(empty)
	}
}

// place puts n stationary objects in the play area.
func place(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.nextID++
		g.objects = append(g.objects, Object{ID: g.nextID, X: 100, Y: 400, Size: 40})
	}
}

func TestSpawnInterval(t *testing.T) {
	g := newGame(t, config.DifficultyNormal)
	g.Start()

	steps(g, 29)
	if n := len(g.Snapshot().Objects); n != 0 {
		t.Fatalf("objects before 1.5s = %d, want 0", n)
	}
	steps(g, 1)
	objs := g.Snapshot().Objects
	if len(objs) != 1 {
		t.Fatalf("objects after 1.5s = %d, want 1", len(objs))
	}

	o := objs[0]
	if o.X < 50 || o.X > 390-50 {
		t.Errorf("spawn x = %v, want within [50, 340]", o.X)
	}
	if o.Y != -50 {
		t.Errorf("spawn y = %v, want -50", o.Y)
	}
	if o.Size < 30 || o.Size > 60 {
		t.Errorf("size = %v, want within [30, 60]", o.Size)
	}
	if o.Speed < 2.5 || o.Speed > 2.5+0.3 {
		t.Errorf("speed = %v, want within [2.5, 2.8]", o.Speed)
	}

	steps(g, 1)
	if got := g.Snapshot().Objects[0].Y; got != -50+o.Speed {
		t.Errorf("y after one move = %v, want %v", got, -50+o.Speed)
	}
}

func TestSpawnIntervalShrinksWithLevel(t *testing.T) {
	g := newGame(t, config.DifficultyHard)
	g.Start()
	if g.SpawnInterval() != 1.0 {
		t.Errorf("level 1 interval = %v, want 1.0", g.SpawnInterval())
	}
	place(g, 10)
	for _, o := range g.Snapshot().Objects {
		g.TapObject(o.ID)
	}
	if g.Snapshot().Level != 2 {
		t.Fatalf("level = %d, want 2", g.Snapshot().Level)
	}
	if g.SpawnInterval() != 0.5 {
		t.Errorf("level 2 interval = %v, want 0.5", g.SpawnInterval())
	}
}

func TestEscapedObjectsAreDiscarded(t *testing.T) {
	g := newGame(t, config.DifficultyEasy)
	g.Start()
	g.objects = append(g.objects, Object{ID: 99, X: 200, Y: 844 + 49, Size: 30, Speed: 2})

	steps(g, 1)

	s := g.Snapshot()
	for _, o := range s.Objects {
		if o.ID == 99 {
			t.Fatal("object below the play area was not discarded")
		}
	}
	if s.Escaped != 1 {
		t.Errorf("escaped = %d, want 1", s.Escaped)
	}
}

func TestTapObjectScoresAndLevelsUp(t *testing.T) {
	g := newGame(t, config.DifficultyNormal)
	g.Start()
	place(g, 20)

	ids := make([]uint64, 0, 20)
	for _, o := range g.Snapshot().Objects {
		ids = append(ids, o.ID)
	}
	for i, id := range ids {
		if !g.TapObject(id) {
			t.Fatalf("tap %d on live object %d missed", i, id)
		}
		if i == 9 {
			s := g.Snapshot()
			if s.Level != 2 || s.Energy != 2*5*2 || !s.LevelUp {
				t.Errorf("after 100 points: level %d energy %d banner %v, want 2/20/true", s.Level, s.Energy, s.LevelUp)
			}
		}
	}

	s := g.Snapshot()
	if s.Score != 200 || s.Level != 3 || s.Destroyed != 20 {
		t.Errorf("score/level/destroyed = %d/%d/%d, want 200/3/20", s.Score, s.Level, s.Destroyed)
	}
	if s.Energy != reward.SpaceAttack(3, config.DifficultyNormal) {
		t.Errorf("energy = %d, want %d", s.Energy, reward.SpaceAttack(3, config.DifficultyNormal))
	}
	if g.TapObject(ids[0]) {
		t.Error("tap on a destroyed object should be ignored")
	}
}

func TestTapAtHitTest(t *testing.T) {
	g := newGame(t, config.DifficultyNormal)
	g.Start()
	g.objects = append(g.objects, Object{ID: 1, X: 100, Y: 100, Size: 40})

	if g.TapAt(100, 121) {
		t.Error("tap outside the radius should miss")
	}
	if !g.TapAt(112, 112) {
		t.Error("tap inside the radius should hit")
	}
	if g.Snapshot().Score != 10 {
		t.Errorf("score = %d, want 10", g.Snapshot().Score)
	}
}

func TestTapsViaInputFrame(t *testing.T) {
	g := newGame(t, config.DifficultyNormal)
	g.Start()
	g.objects = append(g.objects,
		Object{ID: 1, X: 100, Y: 100, Size: 40},
		Object{ID: 2, X: 300, Y: 600, Size: 40},
	)

	in := core.NewInputFrame()
	in.AddTap(core.TapObjectID(2))
	in.AddTap(core.TapAt(100, 100))
	g.Step(in)

	if s := g.Snapshot(); s.Score != 20 || len(s.Objects) != 0 {
		t.Errorf("score = %d, objects = %d, want 20/0", s.Score, len(s.Objects))
	}
}

func TestFireTargetsLowestObject(t *testing.T) {
	g := newGame(t, config.DifficultyNormal)
	g.Start()
	g.objects = append(g.objects,
		Object{ID: 1, X: 100, Y: 100, Size: 40},
		Object{ID: 2, X: 300, Y: 700, Size: 40},
		Object{ID: 3, X: 200, Y: 300, Size: 40},
	)

	g.Step(frame(core.ActionPress))

	for _, o := range g.Snapshot().Objects {
		if o.ID == 2 {
			t.Fatal("lowest object survived Fire")
		}
	}
}

func TestExitProducesResult(t *testing.T) {
	g := newGame(t, config.DifficultyHard)
	g.Start()
	place(g, 10)
	for _, o := range g.Snapshot().Objects {
		g.TapObject(o.ID)
	}
	steps(g, 40)

	res := g.Step(frame(core.ActionExit))
	if !res.Finished {
		t.Fatal("exit did not end the session")
	}
	if !res.State.GameOver {
		t.Error("exit step should report the session as over")
	}
	r, ok := g.Result()
	if !ok {
		t.Fatal("no result after exit")
	}
	if r.Game != session.SpaceAttack || r.Score != 100 || r.Metrics.Level != 2 {
		t.Errorf("result = %+v", r)
	}
	if r.EnergyEarned != 2*5*3 {
		t.Errorf("energy = %d, want 30", r.EnergyEarned)
	}
	if r.EnergyEarned != reward.ForResult(r) {
		t.Errorf("session energy %d disagrees with reward.ForResult %d", r.EnergyEarned, reward.ForResult(r))
	}

	if g.Step(frame(core.ActionExit)).Finished {
		t.Error("second exit reported Finished again")
	}
	if g.TapObject(1) {
		t.Error("tap after end should be ignored")
	}
	if r2, _ := g.Result(); r2 != r {
		t.Error("result changed after end")
	}
}

func TestExitFromReadyHasNoResult(t *testing.T) {
	g := newGame(t, config.DifficultyEasy)
	res := g.Step(frame(core.ActionExit))
	if !res.Finished || !res.State.GameOver {
		t.Errorf("exit from ready = %+v, want finished and over", res)
	}
	if _, ok := g.Result(); ok {
		t.Error("unstarted session produced a result")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, config.DifficultyHard)
	g2 := newGame(t, config.DifficultyHard)
	g1.Start()
	g2.Start()

	for i := 0; i < 200; i++ {
		in := core.NewInputFrame()
		if i%15 == 0 {
			in.Set(core.ActionPress)
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Score != s2.Score || len(s1.Objects) != len(s2.Objects) {
		t.Fatalf("diverged: %d/%d objects %d/%d", s1.Score, s2.Score, len(s1.Objects), len(s2.Objects))
	}
	for i := range s1.Objects {
		if s1.Objects[i] != s2.Objects[i] {
			t.Errorf("object %d differs: %+v vs %+v", i, s1.Objects[i], s2.Objects[i])
		}
	}
}

func TestScreenTapFindsDrawnObject(t *testing.T) {
	g := newGame(t, config.DifficultyNormal)
	g.Start()
	g.objects = append(g.objects, Object{ID: 5, X: 195, Y: 422, Size: 40})

	w, h := 80, 24
	x, y, _, ok := objectCell(g.objects[0], g.cfg.Area.Size(), playRect(w, h))
	if !ok {
		t.Fatal("object should be visible")
	}

	tap, hit := g.ScreenTap(x, y, w, h)
	if !hit || tap.Kind != core.TapObject || tap.Object != 5 {
		t.Errorf("ScreenTap = %+v, %v, want object 5", tap, hit)
	}
	if _, hit := g.ScreenTap(0, 0, w, h); hit {
		t.Error("tap on the HUD should miss")
	}

	scr := core.NewScreen(w, h)
	g.Render(scr)
	if scr.Get(x, y) != '@' {
		t.Errorf("object glyph = %q, want @", scr.Get(x, y))
	}
	if !strings.Contains(scr.Row(1), "Score: 0") {
		t.Errorf("HUD row = %q", scr.Row(1))
	}
}
