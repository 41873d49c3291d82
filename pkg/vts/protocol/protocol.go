// Package protocol defines the VTube Studio public API wire format:
// the request/response envelope, the API error payload, and the typed
// request and response payloads used by the client. This package has
// zero internal dependencies to stay at the bottom of the dependency
// graph.
package protocol

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Envelope constants required by the host on every request.
const (
	APIName    = "VTubeStudioPublicAPI"
	APIVersion = "1.0"
)

// TypeAPIError is the messageType the host uses for error responses.
const TypeAPIError = "APIError"

// Message type constants for requests. The corresponding response
// messageType is the same name with the "Request" suffix replaced by
// "Response".
const (
	TypeAPIStateRequest               = "APIStateRequest"
	TypeStatisticsRequest             = "StatisticsRequest"
	TypeVTSFolderInfoRequest          = "VTSFolderInfoRequest"
	TypeAuthenticationTokenRequest    = "AuthenticationTokenRequest"
	TypeAuthenticationRequest         = "AuthenticationRequest"
	TypeSceneColorOverlayInfoRequest  = "SceneColorOverlayInfoRequest"
	TypeFaceFoundRequest              = "FaceFoundRequest"
	TypeInputParameterListRequest     = "InputParameterListRequest"
	TypeParameterValueRequest         = "ParameterValueRequest"
	TypeLive2DParameterListRequest    = "Live2DParameterListRequest"
	TypeParameterCreationRequest      = "ParameterCreationRequest"
	TypeParameterDeletionRequest      = "ParameterDeletionRequest"
	TypeInjectParameterDataRequest    = "InjectParameterDataRequest"
	TypeHotkeysInCurrentModelRequest  = "HotkeysInCurrentModelRequest"
	TypeHotkeyTriggerRequest          = "HotkeyTriggerRequest"
	TypeArtMeshListRequest            = "ArtMeshListRequest"
	TypeColorTintRequest              = "ColorTintRequest"
	TypeArtMeshSelectionRequest       = "ArtMeshSelectionRequest"
	TypeAvailableModelsRequest        = "AvailableModelsRequest"
	TypeCurrentModelRequest           = "CurrentModelRequest"
	TypeModelLoadRequest              = "ModelLoadRequest"
	TypeMoveModelRequest              = "MoveModelRequest"
	TypeExpressionStateRequest        = "ExpressionStateRequest"
	TypeExpressionActivationRequest   = "ExpressionActivationRequest"
	TypeGetCurrentModelPhysicsRequest = "GetCurrentModelPhysicsRequest"
	TypeSetCurrentModelPhysicsRequest = "SetCurrentModelPhysicsRequest"
	TypeNDIConfigRequest              = "NDIConfigRequest"
	TypeItemListRequest               = "ItemListRequest"
	TypeItemLoadRequest               = "ItemLoadRequest"
	TypeItemUnloadRequest             = "ItemUnloadRequest"
	TypeItemMoveRequest               = "ItemMoveRequest"
	TypeItemAnimationControlRequest   = "ItemAnimationControlRequest"
)

// Envelope is the wire format for all API messages, in both directions.
type Envelope struct {
	APIName     string          `json:"apiName"`
	APIVersion  string          `json:"apiVersion"`
	Timestamp   int64           `json:"timestamp,omitempty"`
	RequestID   string          `json:"requestID,omitempty"`
	MessageType string          `json:"messageType"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// NewRequest builds a request Envelope with the given ID, messageType,
// and payload. A nil payload produces JSON null data, which the host
// accepts for parameterless requests.
func NewRequest(requestID, messageType string, data any) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", messageType, err)
	}
	return Envelope{
		APIName:     APIName,
		APIVersion:  APIVersion,
		RequestID:   requestID,
		MessageType: messageType,
		Data:        raw,
	}, nil
}

// ResponseType returns the expected response messageType for a request
// messageType.
func ResponseType(requestType string) string {
	if rest, ok := strings.CutSuffix(requestType, "Request"); ok {
		return rest + "Response"
	}
	return requestType
}

// Well-known errorID values returned by the host.
const (
	ErrInternal                      = 0
	ErrAPIAccessDeactivated          = 1
	ErrJSONInvalid                   = 2
	ErrAPINameInvalid                = 3
	ErrAPIVersionInvalid             = 4
	ErrRequestIDInvalid              = 5
	ErrRequestTypeMissingOrEmpty     = 6
	ErrRequestTypeUnknown            = 7
	ErrRequestRequiresAuthentication = 8
	ErrTokenRequestDenied            = 50
	ErrTokenRequestCurrentlyOngoing  = 51
)

// APIError is the data payload of an APIError response. It implements
// the error interface so callers can surface it directly.
type APIError struct {
	ErrorID int64  `json:"errorID"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.ErrorID, e.Message)
}
