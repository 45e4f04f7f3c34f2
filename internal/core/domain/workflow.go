package domain

// Stage labels a folder's progress through the presentation pipeline.
// The order is the intended progression; nothing stops a user from
// working stages out of order, the enum only decides what the status
// views display and which actions are offered.
type Stage int

const (
	StageEmpty Stage = iota
	StageImagesReady
	StageAudioReady
	StageVideoReady
)

func (s Stage) String() string {
	switch s {
	case StageImagesReady:
		return "images-ready"
	case StageAudioReady:
		return "audio-ready"
	case StageVideoReady:
		return "video-ready"
	default:
		return "empty"
	}
}

// StageFlags are the observed facts a folder's stage derives from. They
// are recomputed from backend listings on each view load, never stored.
type StageFlags struct {
	HasImages bool
	HasAudio  bool
	HasVideo  bool
}

// Stage collapses the flags into the furthest stage reached.
func (f StageFlags) Stage() Stage {
	switch {
	case f.HasVideo:
		return StageVideoReady
	case f.HasAudio:
		return StageAudioReady
	case f.HasImages:
		return StageImagesReady
	default:
		return StageEmpty
	}
}

// CanGenerateVideo reports whether the generate-video action should be
// offered. Generation needs both images and narration; the check runs
// client-side so the action is refused before a request is built rather
// than trusted to fail on the server.
func (f StageFlags) CanGenerateVideo() bool {
	return f.HasImages && f.HasAudio
}

// Apply folds a successful action's side effect into the flags. Failed
// actions must not be applied; failure leaves the stage unchanged.
func (f StageFlags) Apply(a FolderAction) StageFlags {
	switch a {
	case ActionUploadImages:
		f.HasImages = true
	case ActionGenerateAudio:
		f.HasAudio = true
	case ActionGenerateVideo:
		f.HasVideo = true
	}
	return f
}

// FolderAction names the per-folder pipeline actions.
type FolderAction int

const (
	ActionUploadImages FolderAction = iota
	ActionGenerateAudio
	ActionGenerateVideo
)

// CollectionState is the two-state model of the global video
// collection, shared by the media library and the merge view.
type CollectionState int

const (
	CollectionEmpty CollectionState = iota
	CollectionHasVideos
)

func (s CollectionState) String() string {
	if s == CollectionHasVideos {
		return "has-videos"
	}
	return "empty"
}

// CollectionStateOf derives the state from a listing.
func CollectionStateOf(videos []VideoAsset) CollectionState {
	if len(videos) == 0 {
		return CollectionEmpty
	}
	return CollectionHasVideos
}

// CanMerge reports whether the merge action should be offered. Merging
// an empty collection is refused locally; no request is issued.
func (s CollectionState) CanMerge() bool {
	return s == CollectionHasVideos
}

// CanFinish is always true: clearing the collection does not depend on
// a merge having run, and clearing an empty collection is harmless.
func (s CollectionState) CanFinish() bool {
	return true
}
