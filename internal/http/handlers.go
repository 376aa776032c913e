package http

import (
	"net/http"
)

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.respond(w, r, http.StatusOK, HealthResponse{Status: "healthy", Service: "ipam"})
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "db unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if a.Health == nil {
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}
	if err := a.Health.Ping(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "db ping failed", "err", err)
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary List subnets
// @Tags subnets
// @Produce json
// @Param skip query int false "Rows to skip" minimum(0) default(0)
// @Param limit query int false "Maximum rows" minimum(1) maximum(1000) default(100)
// @Param is_active query bool false "Filter by active flag"
// @Success 200 {array} SubnetResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/subnets [get]
func (a *API) handleListSubnets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	input, err := parseListSubnets(r)
	if err != nil {
		a.Logger.DebugContext(ctx, "invalid list parameters", "query", r.URL.RawQuery, "err", err.Error())
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}

	subnets, err := a.Service.ListSubnets(ctx, input)
	if err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}
	a.respond(w, r, http.StatusOK, subnetsToResponse(subnets))
}

// @Summary Create subnet
// @Tags subnets
// @Accept json
// @Produce json
// @Param subnet body CreateSubnetRequest true "Subnet payload"
// @Success 201 {object} SubnetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/subnets [post]
func (a *API) handleCreateSubnet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subnetReq, err := decode[CreateSubnetRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling subnet from request", "err", err.Error())
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}
	if subnetReq.Name == nil || subnetReq.Network == nil {
		a.respond(w, r, http.StatusUnprocessableEntity, ErrorResponse{Error: "name and network are required"})
		return
	}

	subnet, err := a.Service.CreateSubnet(ctx, subnetReq.toInput())
	if err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}
	a.respond(w, r, http.StatusCreated, subnetToResponse(subnet))
}

// @Summary Get subnet by ID
// @Tags subnets
// @Produce json
// @Param id path int true "Subnet ID"
// @Success 200 {object} SubnetResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/subnets/{id} [get]
func (a *API) handleGetSubnetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}

	subnet, err := a.Service.GetSubnet(r.Context(), id)
	if err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}
	a.respond(w, r, http.StatusOK, subnetToResponse(subnet))
}

// @Summary Update subnet
// @Description Partial update. Keys left out of the body are unchanged; the network is immutable.
// @Tags subnets
// @Accept json
// @Produce json
// @Param id path int true "Subnet ID"
// @Param subnet body UpdateSubnetRequest true "Fields to change"
// @Success 200 {object} SubnetResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/subnets/{id} [put]
func (a *API) handleUpdateSubnet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}

	updateReq, err := decode[UpdateSubnetRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling subnet update", "id", id, "err", err.Error())
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}

	subnet, err := a.Service.UpdateSubnet(ctx, id, updateReq.toInput())
	if err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}
	a.respond(w, r, http.StatusOK, subnetToResponse(subnet))
}

// @Summary Delete subnet
// @Tags subnets
// @Param id path int true "Subnet ID of the subnet to delete."
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/subnets/{id} [delete]
func (a *API) handleDeleteSubnetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}

	if err := a.Service.DeleteSubnet(r.Context(), id); err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Subnet utilization
// @Tags subnets
// @Produce json
// @Param id path int true "Subnet ID"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/subnets/{id}/stats [get]
func (a *API) handleSubnetStats(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}

	stats, err := a.Service.SubnetStats(r.Context(), id)
	if err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}
	a.respond(w, r, http.StatusOK, statsToResponse(stats))
}

// @Summary Get ips by subnet ID
// @Tags ips
// @Produce json
// @Param id path int true "Subnet ID"
// @Success 200 {array} IPResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/subnets/{id}/ips [get]
func (a *API) handleGetIPsBySubnetID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}

	ips, err := a.Service.ListIPs(r.Context(), id)
	if err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}
	a.respond(w, r, http.StatusOK, ipsToResponse(ips))
}

// @Summary Create ip under subnet
// @Tags ips
// @Accept json
// @Produce json
// @Param id path int true "Subnet id in which the ip is created."
// @Param payload body CreateIPRequest true "IP address to create."
// @Success 201 {object} IPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/subnets/{id}/ips [post]
func (a *API) handleCreateIPBySubnetID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}

	ipReq, err := decode[CreateIPRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling ip from request", "err", err.Error())
		a.writeServiceError(w, r, err, "ip not found")
		return
	}
	if ipReq.IP == nil {
		a.respond(w, r, http.StatusUnprocessableEntity, ErrorResponse{Error: "ip_address is required"})
		return
	}

	ip, err := a.Service.CreateIP(ctx, id, ipReq.toInput())
	if err != nil {
		a.writeServiceError(w, r, err, "ip not found")
		return
	}
	a.respond(w, r, http.StatusCreated, ipToResponse(ip))
}

// @Summary Update ip under subnet
// @Tags ips
// @Accept json
// @Produce json
// @Param id path int true "Subnet id in which the ip is updated."
// @Param ipID path int true "ID of the ip to be updated."
// @Param payload body UpdateIPRequest true "Fields to change"
// @Success 200 {object} IPResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/subnets/{id}/ips/{ipID} [patch]
func (a *API) handleUpdateIP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subnetID, err := parsePathInt64(r, "id")
	if err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}
	ipID, err := parsePathInt64(r, "ipID")
	if err != nil {
		a.writeServiceError(w, r, err, "ip not found")
		return
	}

	updateReq, err := decode[UpdateIPRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling ip update", "id", ipID, "err", err.Error())
		a.writeServiceError(w, r, err, "ip not found")
		return
	}

	ip, err := a.Service.UpdateIP(ctx, subnetID, ipID, updateReq.toInput())
	if err != nil {
		a.writeServiceError(w, r, err, "ip not found")
		return
	}
	a.respond(w, r, http.StatusOK, ipToResponse(ip))
}

// @Summary Delete ip under subnet
// @Tags ips
// @Param id path int true "Subnet id in which the ip is deleted."
// @Param ipID path int true "ID of the ip to be deleted."
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/subnets/{id}/ips/{ipID} [delete]
func (a *API) handleDeleteIP(w http.ResponseWriter, r *http.Request) {
	subnetID, err := parsePathInt64(r, "id")
	if err != nil {
		a.writeServiceError(w, r, err, "subnet not found")
		return
	}
	ipID, err := parsePathInt64(r, "ipID")
	if err != nil {
		a.writeServiceError(w, r, err, "ip not found")
		return
	}

	if err := a.Service.DeleteIP(r.Context(), subnetID, ipID); err != nil {
		a.writeServiceError(w, r, err, "ip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
