package cubfile

import "errors"

// Sentinel errors returned (wrapped) by the scene loader. Match them with
// errors.Is.
var (
	ErrExtension        = errors.New("scene file must have a .cub extension")
	ErrHiddenFile       = errors.New("scene file can't be a hidden file")
	ErrShortName        = errors.New("scene file name is too short, minimum is x.cub")
	ErrMissingHeader    = errors.New("missing header")
	ErrDuplicateHeader  = errors.New("duplicate header")
	ErrUnknownHeader    = errors.New("unknown header")
	ErrBadColor         = errors.New("invalid color, expected R,G,B with each value in 0-255")
	ErrEmptyTexturePath = errors.New("empty texture path")
	ErrEmptyMap         = errors.New("scene has no map")
	ErrMapTooLarge      = errors.New("map exceeds the maximum size")
	ErrInvalidMapChar   = errors.New("invalid map character")
	ErrNoPlayer         = errors.New("no player start position")
	ErrMultiplePlayers  = errors.New("multiple player start positions")
	ErrNotEnclosed      = errors.New("map not fully enclosed")
	ErrTextureSize      = errors.New("texture has the wrong dimensions")
)
