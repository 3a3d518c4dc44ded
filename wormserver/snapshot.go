package wormserver

import (
	"github.com/leomalta/worms/common/utils/vector"
	"github.com/leomalta/worms/wormserver/state"
)

// WormSnapshot is the wire form of one worm slot.
type WormSnapshot struct {
	Id       string         `json:"id"`
	Name     string         `json:"name"`
	Behavior string         `json:"behavior"`
	Parts    []vector.Point `json:"parts"` // head first
}

// SceneSnapshot freezes the observable scene state for one turn.
type SceneSnapshot struct {
	Turn     uint32         `json:"turn"`
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	PartSize float64        `json:"partsize"`
	Worms    []WormSnapshot `json:"worms"`
	Rewards  []vector.Point `json:"rewards"`
	Eaten    int            `json:"eaten"`
	Splits   int            `json:"splits"`
	Merges   int            `json:"merges"`
}

func takeSnapshot(scene *Scene, turn uint32) SceneSnapshot {
	snapshot := SceneSnapshot{
		Turn:     turn,
		Width:    scene.Width(),
		Height:   scene.Height(),
		PartSize: scene.Params().PartRadius,
		Worms:    make([]WormSnapshot, 0),
		Rewards:  append([]vector.Point(nil), scene.Rewards()...),
		Eaten:    scene.LastSummary().RewardsEaten,
		Splits:   scene.LastSummary().Splits,
		Merges:   scene.LastSummary().Merges,
	}

	scene.EachWorm(func(view WormView) {
		if view.Behavior.State == state.StateRemoved {
			return
		}
		parts := make([]vector.Point, view.Body.Size())
		for i := 0; i < view.Body.Size(); i++ {
			parts[i] = view.Body.At(i)
		}
		snapshot.Worms = append(snapshot.Worms, WormSnapshot{
			Id:       view.Id.String(),
			Name:     view.Name,
			Behavior: view.Behavior.State.String(),
			Parts:    parts,
		})
	})

	return snapshot
}
