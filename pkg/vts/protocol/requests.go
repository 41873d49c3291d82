package protocol

// AuthenticationTokenRequest asks the host to issue a new plugin token.
// The user has to approve the request in a pop-up inside the app.
type AuthenticationTokenRequest struct {
	PluginName      string `json:"pluginName"`
	PluginDeveloper string `json:"pluginDeveloper"`
	PluginIcon      string `json:"pluginIcon,omitempty"`
}

// AuthenticationRequest authenticates the current session with a
// previously issued token.
type AuthenticationRequest struct {
	PluginName          string `json:"pluginName"`
	PluginDeveloper     string `json:"pluginDeveloper"`
	AuthenticationToken string `json:"authenticationToken"`
}

type ParameterValueRequest struct {
	Name string `json:"name"`
}

type ParameterCreationRequest struct {
	ParameterName string  `json:"parameterName"`
	Explanation   string  `json:"explanation,omitempty"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	DefaultValue  float64 `json:"defaultValue"`
}

type ParameterDeletionRequest struct {
	ParameterName string `json:"parameterName"`
}

// Injection modes for InjectParameterDataRequest. In "set" mode the
// value replaces the parameter value, in "add" mode it is added to it.
const (
	InjectModeSet = "set"
	InjectModeAdd = "add"
)

type InjectParameterDataRequest struct {
	FaceFound       bool             `json:"faceFound"`
	Mode            string           `json:"mode,omitempty"`
	ParameterValues []ParameterValue `json:"parameterValues"`
}

// ParameterValue is one injected value. The host resets injected values
// if they are not refreshed at least once per second.
type ParameterValue struct {
	ID     string   `json:"id"`
	Value  float64  `json:"value"`
	Weight *float64 `json:"weight,omitempty"`
}

type HotkeysInCurrentModelRequest struct {
	ModelID            string `json:"modelID,omitempty"`
	Live2DItemFileName string `json:"live2DItemFileName,omitempty"`
}

type HotkeyTriggerRequest struct {
	HotkeyID       string `json:"hotkeyID"`
	ItemInstanceID string `json:"itemInstanceID,omitempty"`
}

type ColorTintRequest struct {
	ColorTint      ColorTint      `json:"colorTint"`
	ArtMeshMatcher ArtMeshMatcher `json:"artMeshMatcher"`
}

// ColorTint is the tint to apply. Jeb enables the rainbow easter-egg
// mode, named after the Minecraft sheep.
type ColorTint struct {
	ColorR                    uint8    `json:"colorR"`
	ColorG                    uint8    `json:"colorG"`
	ColorB                    uint8    `json:"colorB"`
	ColorA                    uint8    `json:"colorA"`
	MixWithSceneLightingColor *float64 `json:"mixWithSceneLightingColor,omitempty"`
	Jeb                       bool     `json:"jeb_"`
}

// ArtMeshMatcher selects which art meshes a tint applies to. All
// non-empty criteria are OR-ed by the host.
type ArtMeshMatcher struct {
	TintAll       bool     `json:"tintAll"`
	ArtMeshNumber []int32  `json:"artMeshNumber,omitempty"`
	NameExact     []string `json:"nameExact,omitempty"`
	NameContains  []string `json:"nameContains,omitempty"`
	TagExact      []string `json:"tagExact,omitempty"`
	TagContains   []string `json:"tagContains,omitempty"`
}

type ArtMeshSelectionRequest struct {
	TextOverride          string   `json:"textOverride,omitempty"`
	HelpOverride          string   `json:"helpOverride,omitempty"`
	RequestedArtMeshCount int      `json:"requestedArtMeshCount"`
	ActiveArtMeshes       []string `json:"activeArtMeshes,omitempty"`
}

type ModelLoadRequest struct {
	ModelID string `json:"modelID"`
}

// MoveModelRequest moves, rotates, or resizes the current model over
// TimeInSeconds. Nil fields leave the corresponding property unchanged.
type MoveModelRequest struct {
	TimeInSeconds            float64  `json:"timeInSeconds"`
	ValuesAreRelativeToModel bool     `json:"valuesAreRelativeToModel"`
	PositionX                *float64 `json:"positionX,omitempty"`
	PositionY                *float64 `json:"positionY,omitempty"`
	Rotation                 *float64 `json:"rotation,omitempty"`
	Size                     *float64 `json:"size,omitempty"`
}

type ExpressionStateRequest struct {
	Details        bool   `json:"details"`
	ExpressionFile string `json:"expressionFile,omitempty"`
}

type ExpressionActivationRequest struct {
	ExpressionFile string `json:"expressionFile"`
	Active         bool   `json:"active"`
}

type SetCurrentModelPhysicsRequest struct {
	StrengthOverrides []PhysicsOverride `json:"strengthOverrides,omitempty"`
	WindOverrides     []PhysicsOverride `json:"windOverrides,omitempty"`
}

// PhysicsOverride overrides either the base value (SetBaseValue true,
// ID empty) or the multiplier of one physics group (ID set). The host
// accepts OverrideSeconds between 0.5 and 5.
type PhysicsOverride struct {
	ID              string  `json:"id,omitempty"`
	Value           float64 `json:"value"`
	SetBaseValue    bool    `json:"setBaseValue"`
	OverrideSeconds float64 `json:"overrideSeconds"`
}

// NDIConfigRequest reads the NDI config when SetNewConfig is false and
// writes it otherwise. Nil fields keep the current setting.
type NDIConfigRequest struct {
	SetNewConfig        bool  `json:"setNewConfig"`
	NDIActive           *bool `json:"ndiActive,omitempty"`
	UseNDI5             *bool `json:"useNDI5,omitempty"`
	UseCustomResolution *bool `json:"useCustomResolution,omitempty"`
	CustomWidthNDI      *int  `json:"customWidthNDI,omitempty"`
	CustomHeightNDI     *int  `json:"customHeightNDI,omitempty"`
}

type ItemListRequest struct {
	IncludeAvailableSpots       bool   `json:"includeAvailableSpots"`
	IncludeItemInstancesInScene bool   `json:"includeItemInstancesInScene"`
	IncludeAvailableItemFiles   bool   `json:"includeAvailableItemFiles"`
	OnlyItemsWithFileName       string `json:"onlyItemsWithFileName,omitempty"`
	OnlyItemsWithInstanceID     string `json:"onlyItemsWithInstanceID,omitempty"`
}

type ItemLoadRequest struct {
	FileName                    string  `json:"fileName"`
	PositionX                   float64 `json:"positionX"`
	PositionY                   float64 `json:"positionY"`
	Size                        float64 `json:"size"`
	Rotation                    float64 `json:"rotation"`
	FadeTime                    float64 `json:"fadeTime"`
	Order                       int     `json:"order"`
	FailIfOrderTaken            bool    `json:"failIfOrderTaken"`
	Smoothing                   float64 `json:"smoothing"`
	Censored                    bool    `json:"censored"`
	Flipped                     bool    `json:"flipped"`
	Locked                      bool    `json:"locked"`
	UnloadWhenPluginDisconnects bool    `json:"unloadWhenPluginDisconnects"`
}

type ItemUnloadRequest struct {
	UnloadAllInScene                              bool     `json:"unloadAllInScene"`
	UnloadAllLoadedByThisPlugin                   bool     `json:"unloadAllLoadedByThisPlugin"`
	AllowUnloadingItemsLoadedByUserOrOtherPlugins bool     `json:"allowUnloadingItemsLoadedByUserOrOtherPlugins"`
	InstanceIDs                                   []string `json:"instanceIDs,omitempty"`
	FileNames                                     []string `json:"fileNames,omitempty"`
}

type ItemMoveRequest struct {
	ItemsToMove []ItemToMove `json:"itemsToMove"`
}

// ItemToMove is one movement entry. The host ignores position, size,
// rotation, and order values at or below -1000, leaving that property
// unchanged.
type ItemToMove struct {
	ItemInstanceID string  `json:"itemInstanceID"`
	TimeInSeconds  float64 `json:"timeInSeconds"`
	FadeMode       string  `json:"fadeMode,omitempty"`
	PositionX      float64 `json:"positionX"`
	PositionY      float64 `json:"positionY"`
	Size           float64 `json:"size"`
	Rotation       float64 `json:"rotation"`
	Order          int     `json:"order"`
	SetFlip        bool    `json:"setFlip"`
	Flip           bool    `json:"flip"`
	UserCanStop    bool    `json:"userCanStop"`
}

// ItemAnimationControlRequest controls an animated item. Framerate,
// frame, brightness, and opacity use -1 to leave the value unchanged;
// the play state and auto-stop frames only apply when their set flag is
// true.
type ItemAnimationControlRequest struct {
	ItemInstanceID        string  `json:"itemInstanceID"`
	Framerate             float64 `json:"framerate"`
	Frame                 int     `json:"frame"`
	Brightness            float64 `json:"brightness"`
	Opacity               float64 `json:"opacity"`
	SetAutoStopFrames     bool    `json:"setAutoStopFrames"`
	AutoStopFrames        []int   `json:"autoStopFrames"`
	SetAnimationPlayState bool    `json:"setAnimationPlayState"`
	AnimationPlayState    bool    `json:"animationPlayState"`
}
