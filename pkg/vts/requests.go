package vts

import (
	"context"

	"github.com/vtstools/vts/pkg/vts/protocol"
)

// Typed request methods, one per API operation this tool uses. Each
// performs a single request-reply exchange on the open connection.

func (c *Client) APIState(ctx context.Context) (*protocol.APIStateResponse, error) {
	var resp protocol.APIStateResponse
	if err := c.send(ctx, protocol.TypeAPIStateRequest, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Statistics(ctx context.Context) (*protocol.StatisticsResponse, error) {
	var resp protocol.StatisticsResponse
	if err := c.send(ctx, protocol.TypeStatisticsRequest, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) FolderInfo(ctx context.Context) (*protocol.VTSFolderInfoResponse, error) {
	var resp protocol.VTSFolderInfoResponse
	if err := c.send(ctx, protocol.TypeVTSFolderInfoRequest, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SceneColorOverlayInfo(ctx context.Context) (*protocol.SceneColorOverlayInfoResponse, error) {
	var resp protocol.SceneColorOverlayInfoResponse
	if err := c.send(ctx, protocol.TypeSceneColorOverlayInfoRequest, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) FaceFound(ctx context.Context) (*protocol.FaceFoundResponse, error) {
	var resp protocol.FaceFoundResponse
	if err := c.send(ctx, protocol.TypeFaceFoundRequest, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ParameterValue(ctx context.Context, name string) (*protocol.ParameterValueResponse, error) {
	var resp protocol.ParameterValueResponse
	req := protocol.ParameterValueRequest{Name: name}
	if err := c.send(ctx, protocol.TypeParameterValueRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) InputParameterList(ctx context.Context) (*protocol.InputParameterListResponse, error) {
	var resp protocol.InputParameterListResponse
	if err := c.send(ctx, protocol.TypeInputParameterListRequest, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Live2DParameterList(ctx context.Context) (*protocol.Live2DParameterListResponse, error) {
	var resp protocol.Live2DParameterListResponse
	if err := c.send(ctx, protocol.TypeLive2DParameterListRequest, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateParameter(ctx context.Context, req protocol.ParameterCreationRequest) (*protocol.ParameterCreationResponse, error) {
	var resp protocol.ParameterCreationResponse
	if err := c.send(ctx, protocol.TypeParameterCreationRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteParameter(ctx context.Context, name string) (*protocol.ParameterDeletionResponse, error) {
	var resp protocol.ParameterDeletionResponse
	req := protocol.ParameterDeletionRequest{ParameterName: name}
	if err := c.send(ctx, protocol.TypeParameterDeletionRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) InjectParameterData(ctx context.Context, req protocol.InjectParameterDataRequest) (*protocol.InjectParameterDataResponse, error) {
	var resp protocol.InjectParameterDataResponse
	if err := c.send(ctx, protocol.TypeInjectParameterDataRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Hotkeys(ctx context.Context, req protocol.HotkeysInCurrentModelRequest) (*protocol.HotkeysInCurrentModelResponse, error) {
	var resp protocol.HotkeysInCurrentModelResponse
	if err := c.send(ctx, protocol.TypeHotkeysInCurrentModelRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) TriggerHotkey(ctx context.Context, req protocol.HotkeyTriggerRequest) (*protocol.HotkeyTriggerResponse, error) {
	var resp protocol.HotkeyTriggerResponse
	if err := c.send(ctx, protocol.TypeHotkeyTriggerRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ArtMeshList(ctx context.Context) (*protocol.ArtMeshListResponse, error) {
	var resp protocol.ArtMeshListResponse
	if err := c.send(ctx, protocol.TypeArtMeshListRequest, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) TintArtMeshes(ctx context.Context, req protocol.ColorTintRequest) (*protocol.ColorTintResponse, error) {
	var resp protocol.ColorTintResponse
	if err := c.send(ctx, protocol.TypeColorTintRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SelectArtMeshes(ctx context.Context, req protocol.ArtMeshSelectionRequest) (*protocol.ArtMeshSelectionResponse, error) {
	var resp protocol.ArtMeshSelectionResponse
	if err := c.send(ctx, protocol.TypeArtMeshSelectionRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AvailableModels(ctx context.Context) (*protocol.AvailableModelsResponse, error) {
	var resp protocol.AvailableModelsResponse
	if err := c.send(ctx, protocol.TypeAvailableModelsRequest, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CurrentModel(ctx context.Context) (*protocol.CurrentModelResponse, error) {
	var resp protocol.CurrentModelResponse
	if err := c.send(ctx, protocol.TypeCurrentModelRequest, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) LoadModel(ctx context.Context, modelID string) (*protocol.ModelLoadResponse, error) {
	var resp protocol.ModelLoadResponse
	req := protocol.ModelLoadRequest{ModelID: modelID}
	if err := c.send(ctx, protocol.TypeModelLoadRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) MoveModel(ctx context.Context, req protocol.MoveModelRequest) (*protocol.MoveModelResponse, error) {
	var resp protocol.MoveModelResponse
	if err := c.send(ctx, protocol.TypeMoveModelRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ExpressionState(ctx context.Context, req protocol.ExpressionStateRequest) (*protocol.ExpressionStateResponse, error) {
	var resp protocol.ExpressionStateResponse
	if err := c.send(ctx, protocol.TypeExpressionStateRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ActivateExpression(ctx context.Context, file string, active bool) (*protocol.ExpressionActivationResponse, error) {
	var resp protocol.ExpressionActivationResponse
	req := protocol.ExpressionActivationRequest{ExpressionFile: file, Active: active}
	if err := c.send(ctx, protocol.TypeExpressionActivationRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ModelPhysics(ctx context.Context) (*protocol.GetCurrentModelPhysicsResponse, error) {
	var resp protocol.GetCurrentModelPhysicsResponse
	if err := c.send(ctx, protocol.TypeGetCurrentModelPhysicsRequest, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SetModelPhysics(ctx context.Context, req protocol.SetCurrentModelPhysicsRequest) (*protocol.SetCurrentModelPhysicsResponse, error) {
	var resp protocol.SetCurrentModelPhysicsResponse
	if err := c.send(ctx, protocol.TypeSetCurrentModelPhysicsRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) NDIConfig(ctx context.Context, req protocol.NDIConfigRequest) (*protocol.NDIConfigResponse, error) {
	var resp protocol.NDIConfigResponse
	if err := c.send(ctx, protocol.TypeNDIConfigRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ItemList(ctx context.Context, req protocol.ItemListRequest) (*protocol.ItemListResponse, error) {
	var resp protocol.ItemListResponse
	if err := c.send(ctx, protocol.TypeItemListRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) LoadItem(ctx context.Context, req protocol.ItemLoadRequest) (*protocol.ItemLoadResponse, error) {
	var resp protocol.ItemLoadResponse
	if err := c.send(ctx, protocol.TypeItemLoadRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UnloadItems(ctx context.Context, req protocol.ItemUnloadRequest) (*protocol.ItemUnloadResponse, error) {
	var resp protocol.ItemUnloadResponse
	if err := c.send(ctx, protocol.TypeItemUnloadRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) MoveItems(ctx context.Context, req protocol.ItemMoveRequest) (*protocol.ItemMoveResponse, error) {
	var resp protocol.ItemMoveResponse
	if err := c.send(ctx, protocol.TypeItemMoveRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ControlItemAnimation(ctx context.Context, req protocol.ItemAnimationControlRequest) (*protocol.ItemAnimationControlResponse, error) {
	var resp protocol.ItemAnimationControlResponse
	if err := c.send(ctx, protocol.TypeItemAnimationControlRequest, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
