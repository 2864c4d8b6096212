package usecases

import "context"

type ListFoliosExecutor interface {
	Execute(ctx context.Context, query ListFoliosQuery) (*ListFoliosResult, error)
}

type GetFolioExecutor interface {
	Execute(ctx context.Context, query GetFolioQuery) (*FolioDetail, error)
}

type CreateFolioExecutor interface {
	Execute(ctx context.Context, cmd CreateFolioCommand) (*CreateFolioResult, error)
}

type UpdateFolioExecutor interface {
	Execute(ctx context.Context, cmd UpdateFolioCommand) (*UpdateFolioResult, error)
}

type DeleteFolioExecutor interface {
	Execute(ctx context.Context, cmd DeleteFolioCommand) error
}

type AssignResponsibleExecutor interface {
	Execute(ctx context.Context, cmd AssignResponsibleCommand) (*AssignResponsibleResult, error)
}

type UnassignResponsibleExecutor interface {
	Execute(ctx context.Context, cmd UnassignResponsibleCommand) error
}

type AddResponseExecutor interface {
	Execute(ctx context.Context, cmd AddResponseCommand) (*AddResponseResult, error)
}
