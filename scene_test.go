package render_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/triforces-demo/render"
)

// registerTestProgram builds a ShaderProgram through the real registry
// so the uniform map is populated the way production code populates it.
func registerTestProgram(t *testing.T, dev *mockDevice) *render.ShaderProgram {
	t.Helper()
	reg := render.NewRegistry(dev)
	sp, err := reg.RegisterProgram(testVertSrc, testFragSrc, matrixUniforms)
	if err != nil {
		t.Fatalf("RegisterProgram returned error: %v", err)
	}
	return sp
}

func bindFullEntity(scene *render.Scene, id render.EntityID, sp *render.ShaderProgram) {
	scene.BindProgram(id, sp)
	scene.BindBuffers(id, []render.BufferHandle{{VBO: 1, VAO: 1}}, 6)
	scene.BindTexture(id, render.TextureHandle(1))
	scene.SetTransform(id, mgl32.Ident4())
}

func TestForEachReadyYieldsOnlyFullyBoundEntities(t *testing.T) {
	dev := newMockDevice()
	sp := registerTestProgram(t, dev)
	scene := render.NewScene()

	const full, partial render.EntityID = 1, 2
	bindFullEntity(scene, full, sp)

	// The partial entity has everything except a texture.
	scene.BindProgram(partial, sp)
	scene.BindBuffers(partial, []render.BufferHandle{{VBO: 2, VAO: 2}}, 6)
	scene.SetTransform(partial, mgl32.Ident4())

	var seen []render.EntityID
	scene.ForEachReady(func(item render.RenderItem) {
		seen = append(seen, item.ID)
	})
	if len(seen) != 1 || seen[0] != full {
		t.Fatalf("expected only entity %d, got %v", full, seen)
	}

	// Completing the texture binding makes the entity visible on the
	// next iteration.
	scene.BindTexture(partial, render.TextureHandle(2))
	seen = seen[:0]
	scene.ForEachReady(func(item render.RenderItem) {
		seen = append(seen, item.ID)
	})
	if len(seen) != 2 {
		t.Fatalf("expected both entities after completion, got %v", seen)
	}
}

func TestForEachReadyYieldsCompleteItems(t *testing.T) {
	dev := newMockDevice()
	sp := registerTestProgram(t, dev)
	scene := render.NewScene()

	for id := render.EntityID(0); id < 3; id++ {
		scene.BindProgram(id, sp)
		scene.BindBuffers(id, []render.BufferHandle{{VBO: uint32(id + 1), VAO: uint32(id + 1)}}, 12)
		scene.BindTexture(id, render.TextureHandle(id+1))
		scene.SetTransform(id, mgl32.Translate3D(float32(id), 0, 0))
	}

	n := 0
	scene.ForEachReady(func(item render.RenderItem) {
		n++
		if item.Program == nil {
			t.Errorf("entity %d: nil program", item.ID)
		}
		if item.Texture == 0 {
			t.Errorf("entity %d: zero texture", item.ID)
		}
		if len(item.Buffers) == 0 {
			t.Errorf("entity %d: no buffers", item.ID)
		}
		if item.VertexCount != 12 {
			t.Errorf("entity %d: vertex count %d, want 12", item.ID, item.VertexCount)
		}
	})
	if n != 3 {
		t.Errorf("expected 3 items, got %d", n)
	}
	if scene.ReadyCount() != 3 {
		t.Errorf("ReadyCount = %d, want 3", scene.ReadyCount())
	}
}

func TestForEachReadyOrderIsStable(t *testing.T) {
	dev := newMockDevice()
	sp := registerTestProgram(t, dev)
	scene := render.NewScene()

	// Bind in scrambled order; iteration is ascending by EntityID.
	for _, id := range []render.EntityID{7, 2, 9, 4} {
		bindFullEntity(scene, id, sp)
	}

	want := []render.EntityID{2, 4, 7, 9}
	for n := 0; n < 3; n++ {
		var got []render.EntityID
		scene.ForEachReady(func(item render.RenderItem) {
			got = append(got, item.ID)
		})
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("iteration order %v, want %v", got, want)
			}
		}
	}
}

func TestSetTransformLastWriteWins(t *testing.T) {
	dev := newMockDevice()
	sp := registerTestProgram(t, dev)
	scene := render.NewScene()

	const id render.EntityID = 5
	bindFullEntity(scene, id, sp)

	first := mgl32.Translate3D(1, 0, 0)
	second := mgl32.Translate3D(0, 0, 9)
	scene.SetTransform(id, first)
	scene.SetTransform(id, second)

	scene.ForEachReady(func(item render.RenderItem) {
		if item.Transform != second {
			t.Errorf("draw sees transform %v, want the latest write %v", item.Transform, second)
		}
	})
	if m, ok := scene.Transform(id); !ok || m != second {
		t.Errorf("Transform returned %v/%v, want latest write", m, ok)
	}
}

func TestRemoveDropsAllBindings(t *testing.T) {
	dev := newMockDevice()
	sp := registerTestProgram(t, dev)
	scene := render.NewScene()

	const id render.EntityID = 3
	bindFullEntity(scene, id, sp)
	if !scene.Ready(id) {
		t.Fatal("entity should be ready after full binding")
	}

	scene.Remove(id)
	if scene.Ready(id) {
		t.Error("removed entity must not be ready")
	}
	if scene.ReadyCount() != 0 {
		t.Errorf("ReadyCount = %d, want 0", scene.ReadyCount())
	}
}

func TestUniformPanicsOnUnresolvedName(t *testing.T) {
	dev := newMockDevice()
	sp := registerTestProgram(t, dev)

	defer func() {
		if recover() == nil {
			t.Error("querying an unresolved uniform name must panic")
		}
	}()
	sp.Uniform("never_requested")
}
