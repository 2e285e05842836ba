package storefront

const productFields = `
fragment ProductFields on Product {
  id
  options { id name optionValues { id name } }
  variants(first: 250) {
    nodes {
      id
      price
      compareAtPrice
      selectedOptions { name value }
      inventoryItem { id }
    }
  }
  media(first: 250) { nodes { id } }
}
`

const primaryLocationQuery = `
query primaryLocation {
  location { id }
}
`

const publicationsQuery = `
query publications {
  publications(first: 50) { nodes { id name } }
}
`

const productQuery = `
query product($id: ID!) {
  product(id: $id) { ...ProductFields }
}
` + productFields

const productCreateMutation = `
mutation productCreate($product: ProductCreateInput!, $media: [CreateMediaInput!]) {
  productCreate(product: $product, media: $media) {
    product { ...ProductFields }
    userErrors { field message }
  }
}
` + productFields

const productUpdateMutation = `
mutation productUpdate($product: ProductUpdateInput!, $media: [CreateMediaInput!]) {
  productUpdate(product: $product, media: $media) {
    product { id }
    userErrors { field message }
  }
}
`

const productDeleteMutation = `
mutation productDelete($input: ProductDeleteInput!) {
  productDelete(input: $input) {
    deletedProductId
    userErrors { field message }
  }
}
`

const publishMutation = `
mutation publishablePublish($id: ID!, $input: [PublicationInput!]!) {
  publishablePublish(id: $id, input: $input) {
    userErrors { field message }
  }
}
`

const fileDeleteMutation = `
mutation fileDelete($fileIds: [ID!]!) {
  fileDelete(fileIds: $fileIds) {
    deletedFileIds
    userErrors { field message code }
  }
}
`

const optionUpdateMutation = `
mutation productOptionUpdate(
  $productId: ID!,
  $option: OptionUpdateInput!,
  $optionValuesToAdd: [OptionValueCreateInput!],
  $optionValuesToUpdate: [OptionValueUpdateInput!],
  $optionValuesToDelete: [ID!]
) {
  productOptionUpdate(
    productId: $productId,
    option: $option,
    optionValuesToAdd: $optionValuesToAdd,
    optionValuesToUpdate: $optionValuesToUpdate,
    optionValuesToDelete: $optionValuesToDelete,
    variantStrategy: LEAVE_AS_IS
  ) {
    product { ...ProductFields }
    userErrors { field message code }
  }
}
` + productFields

const variantsBulkCreateMutation = `
mutation productVariantsBulkCreate($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
  productVariantsBulkCreate(productId: $productId, variants: $variants) {
    product { ...ProductFields }
    userErrors { field message code }
  }
}
` + productFields

const variantsBulkUpdateMutation = `
mutation productVariantsBulkUpdate($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
  productVariantsBulkUpdate(productId: $productId, variants: $variants) {
    userErrors { field message code }
  }
}
`

const inventoryLevelsQuery = `
query inventoryLevels($ids: [ID!]!, $locationId: ID!) {
  nodes(ids: $ids) {
    ... on InventoryItem {
      id
      inventoryLevel(locationId: $locationId) {
        quantities(names: ["available"]) { name quantity }
      }
    }
  }
}
`

const inventoryAdjustMutation = `
mutation inventoryAdjustQuantities($input: InventoryAdjustQuantitiesInput!) {
  inventoryAdjustQuantities(input: $input) {
    userErrors { field message code }
  }
}
`

const metafieldsSetMutation = `
mutation metafieldsSet($metafields: [MetafieldsSetInput!]!) {
  metafieldsSet(metafields: $metafields) {
    userErrors { field message code }
  }
}
`

const metafieldsDeleteMutation = `
mutation metafieldsDelete($metafields: [MetafieldIdentifierInput!]!) {
  metafieldsDelete(metafields: $metafields) {
    userErrors { field message }
  }
}
`

const metafieldDefinitionCreateMutation = `
mutation metafieldDefinitionCreate($definition: MetafieldDefinitionInput!) {
  metafieldDefinitionCreate(definition: $definition) {
    createdDefinition { id }
    userErrors { field message code }
  }
}
`
