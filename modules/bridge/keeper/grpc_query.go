package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

var _ types.QueryServer = Keeper{}

// Parameters implements the Query/Parameters gRPC method
func (k Keeper) Parameters(goCtx context.Context, req *types.QueryParametersRequest) (*types.QueryParametersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	params := k.GetParams(ctx)

	return &types.QueryParametersResponse{Params: params}, nil
}

// NextSequenceNumbers implements the Query/NextSequenceNumbers gRPC method
func (k Keeper) NextSequenceNumbers(goCtx context.Context, req *types.QueryNextSequenceNumbersRequest) (*types.QueryNextSequenceNumbersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryNextSequenceNumbersResponse{
		In:  k.GetNextSequenceIn(ctx),
		Out: k.GetNextSequenceOut(ctx),
	}, nil
}
