// Package spreadsheet converts products and channel listings to and from
// xlsx workbooks with business-language column headers.
package spreadsheet

const (
	BulletSeparator   = ";"
	CategorySeparator = ">"
	KeywordSeparator  = ","
)

const (
	ProductSheet      = "Produtos"
	ChannelSheet      = "Canais"
	InstructionsSheet = "Instrucoes"
)

type Column struct {
	Key         string
	Required    bool
	Type        string
	Description string
	Example     string
}

// Header is the text written to row 1; required columns carry a " *" marker.
func (c Column) Header() string {
	if c.Required {
		return c.Key + " *"
	}
	return c.Key
}

const (
	ColName          = "nome"
	ColSKU           = "sku"
	ColSupplierCode  = "codigo_fornecedor"
	ColInternalCode  = "codigo_interno"
	ColEAN           = "ean"
	ColBrand         = "marca"
	ColCategory      = "categoria"
	ColSupplierID    = "fornecedor_id"
	ColLength        = "dimensoes_comprimento"
	ColWidth         = "dimensoes_largura"
	ColHeight        = "dimensoes_altura"
	ColWeight        = "peso"
	ColCostItem      = "custo_item"
	ColPackCost      = "custo_embalagem"
	ColTaxPercent    = "imposto_percentual"
	ColObservations  = "observacoes"
	ColDescription   = "descricao"
	ColBulletPoints  = "bullet_points"
	ColPhoto         = "foto"
	ColActive        = "ativo"
	ColProductID     = "produto_id"
	ColChannel       = "canal"
	ColPrice         = "preco"
	ColStock         = "estoque"
	ColTitle         = "titulo"
	ColCategories    = "categorias"
	ColKeywords      = "palavras_chave"
	ColAmazonASIN    = "amazon_asin"
	ColAmazonCat     = "amazon_categoria"
	ColMercadoLivre  = "mercadolivre_id"
	ColMercadoLivCat = "mercadolivre_categoria"
	ColShopify       = "shopify_handle"
	ColMagento       = "magento_sku"
)

var ProductColumns = []Column{
	{Key: ColName, Required: true, Type: "texto", Description: "Nome do produto", Example: "Camiseta Básica Azul"},
	{Key: ColSKU, Required: true, Type: "texto", Description: "Código único do produto na sua conta", Example: "CAM-AZ-001"},
	{Key: ColSupplierCode, Type: "texto", Description: "Código do produto no fornecedor", Example: "FORN-7781"},
	{Key: ColInternalCode, Type: "texto", Description: "Código interno", Example: "INT-0042"},
	{Key: ColEAN, Type: "numero", Description: "Código de barras EAN/GTIN", Example: "7891234567895"},
	{Key: ColBrand, Type: "texto", Description: "Marca", Example: "Acme"},
	{Key: ColCategory, Type: "texto", Description: "Categoria", Example: "Roupas"},
	{Key: ColSupplierID, Type: "uuid", Description: "Identificador do fornecedor cadastrado", Example: "3f2b8a1e-9c4d-4e1f-8a7b-2c6d9e0f1a2b"},
	{Key: ColLength, Type: "numero", Description: "Comprimento em cm", Example: "30"},
	{Key: ColWidth, Type: "numero", Description: "Largura em cm", Example: "20"},
	{Key: ColHeight, Type: "numero", Description: "Altura em cm", Example: "2.5"},
	{Key: ColWeight, Type: "numero", Description: "Peso em kg", Example: "0.25"},
	{Key: ColCostItem, Type: "decimal", Description: "Custo unitário", Example: "19.90"},
	{Key: ColPackCost, Type: "decimal", Description: "Custo de embalagem", Example: "1.50"},
	{Key: ColTaxPercent, Type: "decimal", Description: "Imposto em percentual", Example: "12"},
	{Key: ColObservations, Type: "texto", Description: "Observações internas", Example: "Reposição mensal"},
	{Key: ColDescription, Type: "texto", Description: "Descrição do produto", Example: "Camiseta 100% algodão"},
	{Key: ColBulletPoints, Type: "lista", Description: "Destaques separados por " + BulletSeparator, Example: "Algodão;Gola careca"},
	{Key: ColPhoto, Type: "url", Description: "URL da foto principal", Example: "https://cdn.exemplo.com/cam-az-001.jpg"},
	{Key: ColActive, Type: "sim/nao", Description: "Produto ativo (vazio = sim)", Example: "sim"},
}

var ChannelColumns = []Column{
	{Key: ColProductID, Required: true, Type: "uuid", Description: "Identificador do produto", Example: "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"},
	{Key: ColSKU, Type: "texto", Description: "SKU do produto (apenas referência)", Example: "CAM-AZ-001"},
	{Key: ColChannel, Required: true, Type: "texto", Description: "Nome do canal de venda", Example: "amazon"},
	{Key: ColActive, Type: "sim/nao", Description: "Canal ativo (vazio = sim)", Example: "sim"},
	{Key: ColPrice, Required: true, Type: "decimal", Description: "Preço de venda no canal", Example: "49.90"},
	{Key: ColStock, Type: "inteiro", Description: "Estoque disponível", Example: "100"},
	{Key: ColTitle, Type: "texto", Description: "Título do anúncio", Example: "Camiseta Básica Azul Algodão"},
	{Key: ColDescription, Type: "texto", Description: "Descrição do anúncio", Example: "Camiseta confortável"},
	{Key: ColCategories, Type: "lista", Description: "Caminho de categorias separado por " + CategorySeparator, Example: "Moda>Masculino>Camisetas"},
	{Key: ColKeywords, Type: "lista", Description: "Palavras-chave separadas por " + KeywordSeparator, Example: "camiseta,algodao,azul"},
	{Key: ColAmazonASIN, Type: "texto", Description: "ASIN na Amazon", Example: "B0C1234567"},
	{Key: ColAmazonCat, Type: "texto", Description: "Categoria na Amazon", Example: "Apparel"},
	{Key: ColMercadoLivre, Type: "texto", Description: "Código do anúncio no Mercado Livre", Example: "MLB123456789"},
	{Key: ColMercadoLivCat, Type: "texto", Description: "Categoria no Mercado Livre", Example: "MLB31447"},
	{Key: ColShopify, Type: "texto", Description: "Handle na Shopify", Example: "camiseta-basica-azul"},
	{Key: ColMagento, Type: "texto", Description: "SKU no Magento", Example: "CAM-AZ-001-MG"},
}
