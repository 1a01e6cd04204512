// Package projecthdl - handler dự án.
package projecthdl

import (
	"fmt"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	basehdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/handler"
	projectdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/project/dto"
	projectmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/project/models"
	projectsvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/project/service"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"

	"github.com/gofiber/fiber/v3"
)

// ProjectHandler xử lý request dự án.
type ProjectHandler struct {
	*basehdl.BaseHandler[projectmodels.Project, projectdto.ProjectCreateInput, projectdto.ProjectUpdateInput]
	projectService *projectsvc.ProjectService
}

// NewProjectHandler tạo ProjectHandler mới.
func NewProjectHandler() (*ProjectHandler, error) {
	projectService, err := projectsvc.NewProjectService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProjectService: %w", err)
	}
	baseHandler := basehdl.NewBaseHandler[projectmodels.Project, projectdto.ProjectCreateInput, projectdto.ProjectUpdateInput](projectService)
	return &ProjectHandler{
		BaseHandler:    baseHandler,
		projectService: projectService,
	}, nil
}

// currentUser lấy user đã xác thực từ context
func currentUser(c fiber.Ctx) (*authmodels.User, error) {
	user, ok := c.Locals("user").(authmodels.User)
	if !ok {
		return nil, common.ErrTokenMissing
	}
	return &user, nil
}

// HandleListProjects xử lý GET /projects?time_filter=&time_value=&status=&progress=&search=
func (h *ProjectHandler) HandleListProjects(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		q := &projectdto.ProjectListQuery{
			TimeFilter: c.Query("time_filter"),
			TimeValue:  c.Query("time_value"),
			Status:     c.Query("status"),
			Progress:   c.Query("progress"),
			Search:     c.Query("search"),
		}

		projects, err := h.projectService.ListProjects(c.Context(), actor, q)
		h.HandleResponse(c, projects, err)
		return nil
	})
}

// HandleListByClient xử lý GET /clients/:id/projects
func (h *ProjectHandler) HandleListByClient(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		clientID := c.Params("id")
		if err := basehdl.ValidateRecordID(clientID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		projects, err := h.projectService.ListByClient(c.Context(), actor, clientID)
		h.HandleResponse(c, projects, err)
		return nil
	})
}

// HandleStatistics xử lý GET /projects/statistics?time_filter=&time_value=
func (h *ProjectHandler) HandleStatistics(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		stats, err := h.projectService.Statistics(c.Context(), actor, c.Query("time_filter"), c.Query("time_value"))
		h.HandleResponse(c, stats, err)
		return nil
	})
}

// HandleProgressOptions xử lý GET /projects/progress-options
func (h *ProjectHandler) HandleProgressOptions(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		h.HandleResponse(c, projectsvc.ProgressOptions(), nil)
		return nil
	})
}

// HandleStatusOptions xử lý GET /projects/status-options
func (h *ProjectHandler) HandleStatusOptions(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		h.HandleResponse(c, projectsvc.StatusOptions(), nil)
		return nil
	})
}

// HandleCreateProject xử lý POST /projects
func (h *ProjectHandler) HandleCreateProject(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input projectdto.ProjectCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		project, err := h.projectService.CreateProject(c.Context(), actor, &input)
		h.HandleResponse(c, project, err)
		return nil
	})
}

// HandleGetProject xử lý GET /projects/:id
func (h *ProjectHandler) HandleGetProject(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if err := basehdl.ValidateRecordID(id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		project, err := h.projectService.GetProject(c.Context(), actor, id)
		h.HandleResponse(c, project, err)
		return nil
	})
}

// HandleUpdateProject xử lý PUT /projects/:id
func (h *ProjectHandler) HandleUpdateProject(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if err := basehdl.ValidateRecordID(id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input projectdto.ProjectUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		update, err := h.TransformUpdateInputToUpdateData(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		project, err := h.projectService.UpdateProject(c.Context(), actor, id, update)
		h.HandleResponse(c, project, err)
		return nil
	})
}

// HandleDeleteProject xử lý DELETE /projects/:id — soft-delete sang archived
func (h *ProjectHandler) HandleDeleteProject(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if err := basehdl.ValidateRecordID(id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.projectService.DeleteProject(c.Context(), actor, id)
		h.HandleResponse(c, fiber.Map{"archived": err == nil}, err)
		return nil
	})
}
