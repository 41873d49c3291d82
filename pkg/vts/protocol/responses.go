package protocol

type AuthenticationTokenResponse struct {
	AuthenticationToken string `json:"authenticationToken"`
}

type AuthenticationResponse struct {
	Authenticated bool   `json:"authenticated"`
	Reason        string `json:"reason"`
}

type APIStateResponse struct {
	Active                      bool   `json:"active"`
	VTubeStudioVersion          string `json:"vTubeStudioVersion"`
	CurrentSessionAuthenticated bool   `json:"currentSessionAuthenticated"`
}

type StatisticsResponse struct {
	Uptime             int64  `json:"uptime"`
	Framerate          int    `json:"framerate"`
	VTubeStudioVersion string `json:"vTubeStudioVersion"`
	AllowedPlugins     int    `json:"allowedPlugins"`
	ConnectedPlugins   int    `json:"connectedPlugins"`
	StartedWithSteam   bool   `json:"startedWithSteam"`
	WindowWidth        int    `json:"windowWidth"`
	WindowHeight       int    `json:"windowHeight"`
	WindowIsFullscreen bool   `json:"windowIsFullscreen"`
}

type VTSFolderInfoResponse struct {
	Models      string `json:"models"`
	Backgrounds string `json:"backgrounds"`
	Items       string `json:"items"`
	Config      string `json:"config"`
	Logs        string `json:"logs"`
	Backup      string `json:"backup"`
}

type CapturePart struct {
	Active bool `json:"active"`
	ColorR int  `json:"colorR"`
	ColorG int  `json:"colorG"`
	ColorB int  `json:"colorB"`
}

type SceneColorOverlayInfoResponse struct {
	Active            bool        `json:"active"`
	ItemsIncluded     bool        `json:"itemsIncluded"`
	IsWindowCapture   bool        `json:"isWindowCapture"`
	BaseBrightness    int         `json:"baseBrightness"`
	ColorBoost        int         `json:"colorBoost"`
	Smoothing         int         `json:"smoothing"`
	ColorOverlayR     int         `json:"colorOverlayR"`
	ColorOverlayG     int         `json:"colorOverlayG"`
	ColorOverlayB     int         `json:"colorOverlayB"`
	ColorAvgR         int         `json:"colorAvgR"`
	ColorAvgG         int         `json:"colorAvgG"`
	ColorAvgB         int         `json:"colorAvgB"`
	LeftCapturePart   CapturePart `json:"leftCapturePart"`
	MiddleCapturePart CapturePart `json:"middleCapturePart"`
	RightCapturePart  CapturePart `json:"rightCapturePart"`
}

type FaceFoundResponse struct {
	Found bool `json:"found"`
}

type ParameterValueResponse struct {
	Name         string  `json:"name"`
	AddedBy      string  `json:"addedBy"`
	Value        float64 `json:"value"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	DefaultValue float64 `json:"defaultValue"`
}

type InputParameterListResponse struct {
	ModelLoaded       bool                     `json:"modelLoaded"`
	ModelName         string                   `json:"modelName"`
	ModelID           string                   `json:"modelID"`
	CustomParameters  []ParameterValueResponse `json:"customParameters"`
	DefaultParameters []ParameterValueResponse `json:"defaultParameters"`
}

type Live2DParameterListResponse struct {
	ModelLoaded bool                     `json:"modelLoaded"`
	ModelName   string                   `json:"modelName"`
	ModelID     string                   `json:"modelID"`
	Parameters  []ParameterValueResponse `json:"parameters"`
}

type ParameterCreationResponse struct {
	ParameterName string `json:"parameterName"`
}

type ParameterDeletionResponse struct {
	ParameterName string `json:"parameterName"`
}

// InjectParameterDataResponse carries no data.
type InjectParameterDataResponse struct{}

type Hotkey struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Description      string   `json:"description"`
	File             string   `json:"file"`
	HotkeyID         string   `json:"hotkeyID"`
	KeyCombination   []string `json:"keyCombination"`
	OnScreenButtonID int      `json:"onScreenButtonID"`
}

type HotkeysInCurrentModelResponse struct {
	ModelLoaded      bool     `json:"modelLoaded"`
	ModelName        string   `json:"modelName"`
	ModelID          string   `json:"modelID"`
	AvailableHotkeys []Hotkey `json:"availableHotkeys"`
}

type HotkeyTriggerResponse struct {
	HotkeyID string `json:"hotkeyID"`
}

type ArtMeshListResponse struct {
	ModelLoaded          bool     `json:"modelLoaded"`
	NumberOfArtMeshNames int      `json:"numberOfArtMeshNames"`
	NumberOfArtMeshTags  int      `json:"numberOfArtMeshTags"`
	ArtMeshNames         []string `json:"artMeshNames"`
	ArtMeshTags          []string `json:"artMeshTags"`
}

type ColorTintResponse struct {
	MatchedArtMeshes int `json:"matchedArtMeshes"`
}

type ArtMeshSelectionResponse struct {
	Success           bool     `json:"success"`
	ActiveArtMeshes   []string `json:"activeArtMeshes"`
	InactiveArtMeshes []string `json:"inactiveArtMeshes"`
}

type ModelInfo struct {
	ModelLoaded      bool   `json:"modelLoaded"`
	ModelName        string `json:"modelName"`
	ModelID          string `json:"modelID"`
	VTSModelName     string `json:"vtsModelName"`
	VTSModelIconName string `json:"vtsModelIconName"`
}

type AvailableModelsResponse struct {
	NumberOfModels  int         `json:"numberOfModels"`
	AvailableModels []ModelInfo `json:"availableModels"`
}

type ModelPosition struct {
	PositionX float64 `json:"positionX"`
	PositionY float64 `json:"positionY"`
	Rotation  float64 `json:"rotation"`
	Size      float64 `json:"size"`
}

type CurrentModelResponse struct {
	ModelLoaded              bool          `json:"modelLoaded"`
	ModelName                string        `json:"modelName"`
	ModelID                  string        `json:"modelID"`
	VTSModelName             string        `json:"vtsModelName"`
	VTSModelIconName         string        `json:"vtsModelIconName"`
	Live2DModelName          string        `json:"live2DModelName"`
	ModelLoadTime            int64         `json:"modelLoadTime"`
	TimeSinceModelLoaded     int64         `json:"timeSinceModelLoaded"`
	NumberOfLive2DParameters int           `json:"numberOfLive2DParameters"`
	NumberOfLive2DArtmeshes  int           `json:"numberOfLive2DArtmeshes"`
	HasPhysicsFile           bool          `json:"hasPhysicsFile"`
	NumberOfTextures         int           `json:"numberOfTextures"`
	TextureResolution        int           `json:"textureResolution"`
	ModelPosition            ModelPosition `json:"modelPosition"`
}

type ModelLoadResponse struct {
	ModelID string `json:"modelID"`
}

// MoveModelResponse carries no data.
type MoveModelResponse struct{}

type ExpressionParameter struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type ExpressionHotkeyRef struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type Expression struct {
	Name                       string                `json:"name"`
	File                       string                `json:"file"`
	Active                     bool                  `json:"active"`
	DeactivateWhenKeyIsLetGo   bool                  `json:"deactivateWhenKeyIsLetGo"`
	AutoDeactivateAfterSeconds bool                  `json:"autoDeactivateAfterSeconds"`
	SecondsRemaining           float64               `json:"secondsRemaining"`
	UsedInHotkeys              []ExpressionHotkeyRef `json:"usedInHotkeys,omitempty"`
	Parameters                 []ExpressionParameter `json:"parameters,omitempty"`
}

type ExpressionStateResponse struct {
	ModelLoaded bool         `json:"modelLoaded"`
	ModelName   string       `json:"modelName"`
	ModelID     string       `json:"modelID"`
	Expressions []Expression `json:"expressions"`
}

// ExpressionActivationResponse carries no data.
type ExpressionActivationResponse struct{}

type PhysicsGroup struct {
	GroupID            string  `json:"groupID"`
	GroupName          string  `json:"groupName"`
	StrengthMultiplier float64 `json:"strengthMultiplier"`
	WindMultiplier     float64 `json:"windMultiplier"`
}

type GetCurrentModelPhysicsResponse struct {
	ModelLoaded                  bool           `json:"modelLoaded"`
	ModelName                    string         `json:"modelName"`
	ModelID                      string         `json:"modelID"`
	ModelHasPhysics              bool           `json:"modelHasPhysics"`
	PhysicsSwitchedOn            bool           `json:"physicsSwitchedOn"`
	UsingLegacyPhysics           bool           `json:"usingLegacyPhysics"`
	PhysicsFPSSetting            int            `json:"physicsFPSSetting"`
	BaseStrength                 int            `json:"baseStrength"`
	BaseWind                     int            `json:"baseWind"`
	APIPhysicsOverrideActive     bool           `json:"apiPhysicsOverrideActive"`
	APIPhysicsOverridePluginName string         `json:"apiPhysicsOverridePluginName"`
	PhysicsGroups                []PhysicsGroup `json:"physicsGroups"`
}

// SetCurrentModelPhysicsResponse carries no data.
type SetCurrentModelPhysicsResponse struct{}

type ItemInstance struct {
	FileName        string  `json:"fileName"`
	InstanceID      string  `json:"instanceID"`
	Order           int     `json:"order"`
	Type            string  `json:"type"`
	Censored        bool    `json:"censored"`
	Flipped         bool    `json:"flipped"`
	Locked          bool    `json:"locked"`
	Smoothing       float64 `json:"smoothing"`
	Framerate       float64 `json:"framerate"`
	FrameCount      int     `json:"frameCount"`
	CurrentFrame    int     `json:"currentFrame"`
	PinnedToModel   bool    `json:"pinnedToModel"`
	PinnedModelID   string  `json:"pinnedModelID"`
	PinnedArtMeshID string  `json:"pinnedArtMeshID"`
	GroupName       string  `json:"groupName"`
	SceneName       string  `json:"sceneName"`
	FromWorkshop    bool    `json:"fromWorkshop"`
}

type ItemFile struct {
	FileName    string `json:"fileName"`
	Type        string `json:"type"`
	LoadedCount int    `json:"loadedCount"`
}

type ItemListResponse struct {
	ItemsInSceneCount      int            `json:"itemsInSceneCount"`
	TotalItemsAllowedCount int            `json:"totalItemsAllowedCount"`
	CanLoadItemsRightNow   bool           `json:"canLoadItemsRightNow"`
	AvailableSpots         []int          `json:"availableSpots"`
	ItemInstancesInScene   []ItemInstance `json:"itemInstancesInScene"`
	AvailableItemFiles     []ItemFile     `json:"availableItemFiles"`
}

type ItemLoadResponse struct {
	InstanceID string `json:"instanceID"`
}

type UnloadedItem struct {
	InstanceID string `json:"instanceID"`
	FileName   string `json:"fileName"`
}

type ItemUnloadResponse struct {
	UnloadedItems []UnloadedItem `json:"unloadedItems"`
}

type MovedItem struct {
	ItemInstanceID string `json:"itemInstanceID"`
	Success        bool   `json:"success"`
	ErrorID        int64  `json:"errorID"`
}

type ItemMoveResponse struct {
	MovedItems []MovedItem `json:"movedItems"`
}

type ItemAnimationControlResponse struct {
	Frame            int  `json:"frame"`
	AnimationPlaying bool `json:"animationPlaying"`
}

type NDIConfigResponse struct {
	SetNewConfig        bool `json:"setNewConfig"`
	NDIActive           bool `json:"ndiActive"`
	UseNDI5             bool `json:"useNDI5"`
	UseCustomResolution bool `json:"useCustomResolution"`
	CustomWidthNDI      int  `json:"customWidthNDI"`
	CustomHeightNDI     int  `json:"customHeightNDI"`
}
