package api

import (
	"context"
	"net/url"
	"strconv"
)

// ListOperadoras fetches one page of operadoras matching params.Search
func (c *Client) ListOperadoras(ctx context.Context, params ListParams) (*OperadoraPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = DefaultLimit
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("limit", strconv.Itoa(params.Limit))
	query.Set("search", params.Search)

	var page OperadoraPage
	if err := c.getJSON(ctx, []string{"operadoras"}, query, &page); err != nil {
		return nil, err
	}
	if page.Data == nil {
		page.Data = []Operadora{}
	}
	return &page, nil
}

// GetOperadora fetches a single operadora by CNPJ
func (c *Client) GetOperadora(ctx context.Context, cnpj CNPJ) (*Operadora, error) {
	var op Operadora
	if err := c.getJSON(ctx, []string{"operadoras", cnpj.String()}, nil, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

// Despesas fetches the expense history of an operadora, newest first
func (c *Client) Despesas(ctx context.Context, cnpj CNPJ) ([]Despesa, error) {
	var despesas []Despesa
	if err := c.getJSON(ctx, []string{"operadoras", cnpj.String(), "despesas"}, nil, &despesas); err != nil {
		return nil, err
	}
	if despesas == nil {
		despesas = []Despesa{}
	}
	return despesas, nil
}
